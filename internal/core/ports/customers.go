package ports

import (
	"context"
	"time"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

// TouchKind names a denormalized customer field maintained asynchronously.
type TouchKind string

const (
	TouchLastVisit    TouchKind = "last_visit"
	TouchConsultation TouchKind = "consultation_completed"
)

// CustomerTouch is a best-effort job to refresh one denormalized field on a
// customer record.
type CustomerTouch struct {
	CustomerID string
	Kind       TouchKind
	OccurredAt time.Time
}

// CustomerToucher applies a CustomerTouch. Implementations must treat
// failures as non-fatal; the originating write has already succeeded.
type CustomerToucher interface {
	Apply(ctx context.Context, touch CustomerTouch) error
}

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
	SetLastVisit(ctx context.Context, id string, ts time.Time) error
	SetLastConsultationDate(ctx context.Context, id string, ts time.Time) error
}

// CustomerService defines use-case operations for customers.
type CustomerService interface {
	CustomerToucher
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, id string, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
