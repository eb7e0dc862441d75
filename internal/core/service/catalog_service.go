package service

import (
	"context"
	"time"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// CatalogService implements CRUD over the service catalog.
type CatalogService struct {
	repo ports.CatalogRepository
}

func NewCatalogService(repo ports.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if svc.Name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if svc.Price <= 0 {
		return nil, domain.NewValidationError("price", "must be positive")
	}

	now := time.Now().UTC()
	svc.Active = true
	svc.CreatedAt = now
	svc.UpdatedAt = now
	return s.repo.Create(ctx, svc)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Update(ctx context.Context, id string, svc *domain.Service) (*domain.Service, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if svc.Name != "" {
		existing.Name = svc.Name
	}
	if svc.Category != "" {
		existing.Category = svc.Category
	}
	if svc.Price > 0 {
		existing.Price = svc.Price
	}
	if svc.DurationMinutes > 0 {
		existing.DurationMinutes = svc.DurationMinutes
	}
	existing.Active = svc.Active
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
