package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// ReportCache abstracts the short-lived report result cache (Redis).
// Get returns (nil, nil) on a miss.
type ReportCache interface {
	Get(ctx context.Context, key string) (*ports.ReportResult, error)
	Set(ctx context.Context, key string, result *ports.ReportResult) error
}

// ReportService aggregates transactions over a date range.
type ReportService struct {
	repo   ports.TransactionRepository
	cache  ReportCache
	logger zerolog.Logger
}

func NewReportService(repo ports.TransactionRepository, cache ReportCache, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, cache: cache, logger: logger}
}

// Run returns the transactions matching input plus a computed summary.
// Results are cached briefly; a cache failure falls through to the store.
func (s *ReportService) Run(ctx context.Context, input ports.ReportInput) (*ports.ReportResult, error) {
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, domain.NewValidationError("startDate", "startDate and endDate are required")
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, domain.NewValidationError("endDate", "must not be before startDate")
	}

	key := cacheKey(input)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Msg("report cache read failed, querying store")
		} else if cached != nil {
			return cached, nil
		}
	}

	txs, err := s.repo.List(ctx, ports.TransactionFilter{
		From:        input.StartDate,
		To:          input.EndDate,
		TherapistID: input.TherapistID,
		CustomerID:  input.CustomerID,
		Category:    input.Category,
	})
	if err != nil {
		return nil, err
	}

	var summary ports.ReportSummary
	for _, t := range txs {
		summary.Total += t.Total
		summary.Subtotal += t.Subtotal
		summary.Discount += t.Discount
	}
	summary.Total = round2(summary.Total)
	summary.Subtotal = round2(summary.Subtotal)
	summary.Discount = round2(summary.Discount)
	summary.TransactionCount = len(txs)

	result := &ports.ReportResult{Transactions: txs, Summary: summary}
	if result.Transactions == nil {
		result.Transactions = []*domain.Transaction{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result); err != nil {
			s.logger.Warn().Err(err).Msg("report cache write failed")
		}
	}

	return result, nil
}

func cacheKey(in ports.ReportInput) string {
	return fmt.Sprintf("report:%d:%d:%s:%s:%s",
		in.StartDate.Unix(), in.EndDate.Unix(), in.TherapistID, in.CustomerID, in.Category)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
