package ports

import (
	"context"
	"time"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

// TransactionFilter carries the optional query parameters for listing
// transactions and running reports.
type TransactionFilter struct {
	From        time.Time // zero = unbounded
	To          time.Time // zero = unbounded
	TherapistID string
	CustomerID  string
	Category    string // matches any line item category
}

// TransactionRepository defines persistence for point-of-sale records.
// There is deliberately no update or delete: transactions are immutable.
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]*domain.Transaction, error)
}

// TransactionService defines use-case operations for sales.
type TransactionService interface {
	// Record validates all arithmetic invariants server-side and persists
	// the sale. Nothing is written when validation fails.
	Record(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]*domain.Transaction, error)
}
