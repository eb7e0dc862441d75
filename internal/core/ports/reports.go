package ports

import (
	"context"
	"time"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

// ReportInput carries the date range and optional filters for a sales report.
type ReportInput struct {
	StartDate   time.Time
	EndDate     time.Time
	TherapistID string
	CustomerID  string
	Category    string
}

// ReportSummary aggregates the matched transactions. All monetary fields are
// rounded to 2 decimal places.
type ReportSummary struct {
	Total            float64 `json:"total"`
	Subtotal         float64 `json:"subtotal"`
	Discount         float64 `json:"discount"`
	TransactionCount int     `json:"transaction_count"`
}

// ReportResult is the full report payload: matching transactions plus the
// computed summary.
type ReportResult struct {
	Transactions []*domain.Transaction `json:"transactions"`
	Summary      ReportSummary         `json:"summary"`
}

// ReportService runs date-range aggregations over transactions.
type ReportService interface {
	Run(ctx context.Context, input ReportInput) (*ReportResult, error)
}
