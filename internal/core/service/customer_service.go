package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// CustomerService implements customer CRUD plus the asynchronous
// denormalization touches (last visit, last completed consultation).
type CustomerService struct {
	repo ports.CustomerRepository
}

func NewCustomerService(repo ports.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if c.Name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if c.Email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}

	now := time.Now().UTC()
	c.Email = strings.ToLower(c.Email)
	c.Active = true
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.repo.Create(ctx, c)
}

func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Update(ctx context.Context, id string, c *domain.Customer) (*domain.Customer, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Name != "" {
		existing.Name = c.Name
	}
	if c.Email != "" {
		existing.Email = strings.ToLower(c.Email)
	}
	if c.Phone != "" {
		existing.Phone = c.Phone
	}
	if c.Address != "" {
		existing.Address = c.Address
	}
	if c.Notes != "" {
		existing.Notes = c.Notes
	}
	existing.Active = c.Active
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Apply executes one denormalization touch. Called by the queue workers, not
// by request handlers.
func (s *CustomerService) Apply(ctx context.Context, touch ports.CustomerTouch) error {
	switch touch.Kind {
	case ports.TouchLastVisit:
		return s.repo.SetLastVisit(ctx, touch.CustomerID, touch.OccurredAt)
	case ports.TouchConsultation:
		return s.repo.SetLastConsultationDate(ctx, touch.CustomerID, touch.OccurredAt)
	default:
		return fmt.Errorf("unknown touch kind %q", touch.Kind)
	}
}
