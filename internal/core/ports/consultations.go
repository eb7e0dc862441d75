package ports

import (
	"context"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

// ConsultationRepository defines persistence operations for consultation forms.
type ConsultationRepository interface {
	Create(ctx context.Context, f *domain.ConsultationForm) (*domain.ConsultationForm, error)
	FindByID(ctx context.Context, id string) (*domain.ConsultationForm, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.ConsultationForm, error)
	Update(ctx context.Context, f *domain.ConsultationForm) error
	Delete(ctx context.Context, id string) error
}

// ConsultationService defines use-case operations for consultation forms.
type ConsultationService interface {
	Create(ctx context.Context, f *domain.ConsultationForm) (*domain.ConsultationForm, error)
	Get(ctx context.Context, id string) (*domain.ConsultationForm, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.ConsultationForm, error)
	Update(ctx context.Context, id string, f *domain.ConsultationForm) (*domain.ConsultationForm, error)
	Delete(ctx context.Context, id string) error
}
