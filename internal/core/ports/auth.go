package ports

import (
	"context"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

// AuthService authenticates staff credentials and mints session tokens.
type AuthService interface {
	// Login verifies the username (case-insensitive) and password and returns
	// a signed session token plus the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
