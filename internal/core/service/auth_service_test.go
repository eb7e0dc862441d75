package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

type stubUserRepo struct {
	byUsername map[string]*domain.User
	byID       map[string]*domain.User
	createErr  error
	updateErr  error
	seq        int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byUsername: make(map[string]*domain.User),
		byID:       make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.byUsername[u.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.seq++
	clone := *u
	clone.ID = fmt.Sprintf("usr_%d", r.seq)
	r.byUsername[clone.Username] = &clone
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	r.byUsername[u.Username] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byUsername, u.Username)
	delete(r.byID, id)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password, role string, active bool) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Name:         "Test User",
		Role:         role,
		Active:       active,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return u
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "alice", "s3cret-pass", domain.RoleOwner, true)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "alice", "s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if user.ID != seeded.ID {
		t.Errorf("expected user %q, got %q", seeded.ID, user.ID)
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "alice", "s3cret-pass", domain.RoleManager, true)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	token, _, err := svc.Login(context.Background(), "alice", "s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must verify with the signing secret: %v", err)
	}

	if claims["sub"] != seeded.ID {
		t.Errorf("sub: want %q, got %v", seeded.ID, claims["sub"])
	}
	if claims["username"] != "alice" {
		t.Errorf("username: want alice, got %v", claims["username"])
	}
	if claims["role"] != domain.RoleManager {
		t.Errorf("role: want %q, got %v", domain.RoleManager, claims["role"])
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("exp claim missing")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		t.Error("exp must be in the future")
	}
}

func TestAuthService_Login_CaseInsensitiveUsername(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "s3cret-pass", domain.RoleOwner, true)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ALICE", "s3cret-pass"); err != nil {
		t.Fatalf("uppercase username must resolve the same account: %v", err)
	}
}

func TestAuthService_Login_GenericErrorHidesCause(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "s3cret-pass", domain.RoleOwner, true)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	// Unknown user and wrong password must be indistinguishable.
	_, _, errUnknown := svc.Login(context.Background(), "ghost", "whatever")
	_, _, errWrongPw := svc.Login(context.Background(), "alice", "wrong-pass")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Error("both failure modes must produce the identical message")
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "s3cret-pass", domain.RoleOwner, false)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "alice", "s3cret-pass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("inactive account must fail with the generic error, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "test-secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty username: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}
