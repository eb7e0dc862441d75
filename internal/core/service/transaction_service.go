package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// TouchDispatcher enqueues best-effort customer denormalization jobs.
// Implemented by queue.Dispatcher.
type TouchDispatcher interface {
	Enqueue(touch ports.CustomerTouch)
}

// TransactionService records immutable point-of-sale transactions.
type TransactionService struct {
	repo       ports.TransactionRepository
	dispatcher TouchDispatcher
	logger     zerolog.Logger
}

func NewTransactionService(repo ports.TransactionRepository, dispatcher TouchDispatcher, logger zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, dispatcher: dispatcher, logger: logger}
}

// Record re-verifies all arithmetic invariants before persisting. On a
// validation failure nothing is written. On success the customer's last
// visit is refreshed asynchronously; that side effect never fails the sale.
func (s *TransactionService) Record(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if err := t.Validate(); err != nil {
		s.logger.Debug().Err(err).Str("customer_id", t.Customer.ID).Msg("transaction rejected")
		return nil, err
	}

	t.PaymentMethod, _ = domain.NormalizePaymentMethod(t.PaymentMethod)
	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}
	if t.Status == "" {
		t.Status = domain.TransactionCompleted
	}
	t.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create transaction")
		return nil, err
	}

	s.dispatcher.Enqueue(ports.CustomerTouch{
		CustomerID: created.Customer.ID,
		Kind:       ports.TouchLastVisit,
		OccurredAt: created.Date,
	})

	s.logger.Info().
		Str("transaction_id", created.ID).
		Str("customer_id", created.Customer.ID).
		Str("therapist_id", created.Therapist.ID).
		Float64("total", created.Total).
		Str("payment_method", created.PaymentMethod).
		Msg("transaction recorded")

	return created, nil
}

func (s *TransactionService) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TransactionService) List(ctx context.Context, filter ports.TransactionFilter) ([]*domain.Transaction, error) {
	return s.repo.List(ctx, filter)
}
