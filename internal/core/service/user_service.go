package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// UserService implements staff account management. Passwords are hashed
// exactly once per plaintext change and only the hash is ever stored.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if input.Password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}
	if input.Email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.NewValidationError("role", "must be one of user, admin, owner, therapist, manager")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:       strings.ToLower(input.Username),
		Email:          strings.ToLower(input.Email),
		PasswordHash:   string(hash),
		Name:           input.Name,
		Role:           input.Role,
		Active:         true,
		EmploymentType: input.EmploymentType,
		HourlyRate:     input.HourlyRate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return s.repo.Create(ctx, user)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" {
		user.Email = strings.ToLower(input.Email)
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Role != "" {
		if !domain.ValidRole(input.Role) {
			return nil, domain.NewValidationError("role", "must be one of user, admin, owner, therapist, manager")
		}
		user.Role = input.Role
	}
	if input.EmploymentType != "" {
		user.EmploymentType = input.EmploymentType
	}
	if input.HourlyRate > 0 {
		user.HourlyRate = input.HourlyRate
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	// Rehash only when a new plaintext was supplied.
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
