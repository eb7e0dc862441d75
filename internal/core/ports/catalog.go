package ports

import (
	"context"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

// CatalogRepository defines persistence operations for the service catalog.
type CatalogRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id string) error
}

// CatalogService defines use-case operations for the service catalog.
type CatalogService interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Get(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, id string, s *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}
