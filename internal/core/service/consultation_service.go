package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// ConsultationService implements consultation form CRUD. Completing a form
// enqueues a best-effort refresh of the customer's
// last_consultation_form_date; a failed refresh never rolls back the save.
type ConsultationService struct {
	repo       ports.ConsultationRepository
	dispatcher TouchDispatcher
	logger     zerolog.Logger
}

func NewConsultationService(repo ports.ConsultationRepository, dispatcher TouchDispatcher, logger zerolog.Logger) *ConsultationService {
	return &ConsultationService{repo: repo, dispatcher: dispatcher, logger: logger}
}

func (s *ConsultationService) Create(ctx context.Context, f *domain.ConsultationForm) (*domain.ConsultationForm, error) {
	if f.CustomerID == "" {
		return nil, domain.NewValidationError("customer_id", "is required")
	}

	now := time.Now().UTC()
	if f.Status == "" {
		f.Status = domain.ConsultationDraft
	}
	f.CreatedAt = now
	f.UpdatedAt = now
	s.stampCompletion(f)

	created, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, err
	}

	s.notifyIfCompleted(created)
	return created, nil
}

func (s *ConsultationService) Get(ctx context.Context, id string) (*domain.ConsultationForm, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ConsultationService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.ConsultationForm, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *ConsultationService) Update(ctx context.Context, id string, f *domain.ConsultationForm) (*domain.ConsultationForm, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasCompleted := existing.Status == domain.ConsultationCompleted

	if f.Status != "" {
		existing.Status = f.Status
	}
	if f.TherapistID != "" {
		existing.TherapistID = f.TherapistID
	}
	if len(f.Answers) > 0 {
		existing.Answers = f.Answers
	}
	existing.UpdatedAt = time.Now().UTC()
	s.stampCompletion(existing)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if !wasCompleted {
		s.notifyIfCompleted(existing)
	}
	return existing, nil
}

func (s *ConsultationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ConsultationService) stampCompletion(f *domain.ConsultationForm) {
	if f.Status == domain.ConsultationCompleted && f.CompletedAt == nil {
		now := time.Now().UTC()
		f.CompletedAt = &now
	}
}

func (s *ConsultationService) notifyIfCompleted(f *domain.ConsultationForm) {
	if f.Status != domain.ConsultationCompleted || f.CompletedAt == nil {
		return
	}
	s.dispatcher.Enqueue(ports.CustomerTouch{
		CustomerID: f.CustomerID,
		Kind:       ports.TouchConsultation,
		OccurredAt: *f.CompletedAt,
	})
	s.logger.Debug().
		Str("form_id", f.ID).
		Str("customer_id", f.CustomerID).
		Msg("consultation completion touch enqueued")
}
