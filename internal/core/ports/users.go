package ports

import (
	"context"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

// UserRepository defines persistence operations for staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByUsername matches the stored lowercase username exactly; callers
	// lowercase the input first.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// CreateUserInput carries the fields accepted when creating a staff account.
type CreateUserInput struct {
	Username       string
	Password       string
	Email          string
	Name           string
	Role           string
	EmploymentType string
	HourlyRate     float64
}

// UpdateUserInput carries the mutable fields of a staff account. An empty
// Password leaves the stored hash untouched; a nil Active leaves the flag.
type UpdateUserInput struct {
	Email          string
	Name           string
	Role           string
	Password       string
	EmploymentType string
	HourlyRate     float64
	Active         *bool
}

// UserService defines use-case operations for staff accounts.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
