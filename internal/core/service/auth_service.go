package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

const defaultSessionTTL = 30 * 24 * time.Hour

// AuthService implements credential login and session token minting.
type AuthService struct {
	repo       ports.UserRepository
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, sessionTTL: sessionTTL}
}

// Login authenticates by case-insensitive username. Unknown users and wrong
// passwords produce the identical generic error so usernames cannot be
// enumerated. Passwords are never logged.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Active {
		return "", nil, domain.ErrInvalidCredentials
	}

	// bcrypt's comparison is constant-time over the hash.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.sessionTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
