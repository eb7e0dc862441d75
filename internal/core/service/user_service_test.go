package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

func createInput(username string) ports.CreateUserInput {
	return ports.CreateUserInput{
		Username: username,
		Password: "longenough1",
		Email:    username + "@example.com",
		Name:     "Test User",
		Role:     domain.RoleTherapist,
	}
}

func TestUserService_Create_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), createInput("Alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Username != "alice" {
		t.Errorf("username must be lowercased, got %q", user.Username)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email must be lowercased, got %q", user.Email)
	}
	if !user.Active {
		t.Error("new accounts must start active")
	}
	if user.PasswordHash == "longenough1" || user.PasswordHash == "" {
		t.Error("password must be stored as a bcrypt hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough1")) != nil {
		t.Error("stored hash must verify the original password")
	}
}

func TestUserService_Create_DuplicateUsernameDifferentCase(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	if _, err := svc.Create(context.Background(), createInput("Alice")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), createInput("ALICE"))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("case variants must collide: expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	in := createInput("bob")
	in.Role = "superuser"
	_, err := svc.Create(context.Background(), in)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "role" {
		t.Errorf("expected role validation error, got %v", err)
	}
}

func TestUserService_Create_MissingFields(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	for _, mutate := range []func(*ports.CreateUserInput){
		func(in *ports.CreateUserInput) { in.Username = "" },
		func(in *ports.CreateUserInput) { in.Password = "" },
		func(in *ports.CreateUserInput) { in.Email = "" },
	} {
		in := createInput("bob")
		mutate(&in)
		if _, err := svc.Create(context.Background(), in); err == nil {
			t.Errorf("expected validation error for input %+v", in)
		}
	}
}

func TestUserService_PasswordHashNeverSerialized(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), createInput("alice"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), user.PasswordHash) || strings.Contains(string(raw), "password") {
		t.Errorf("serialized user must not leak the hash: %s", raw)
	}
}

func TestUserService_Update_KeepsHashWithoutNewPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), createInput("alice"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	originalHash := created.PasswordHash

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Name: "Alice B"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.PasswordHash != originalHash {
		t.Error("hash must be untouched when no new password is supplied")
	}
	if updated.Name != "Alice B" {
		t.Errorf("name not applied, got %q", updated.Name)
	}
}

func TestUserService_Update_RehashesNewPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	created, _ := svc.Create(context.Background(), createInput("alice"))

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Password: "brandnewpass"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PasswordHash == created.PasswordHash {
		t.Error("hash must change when a new password is supplied")
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("brandnewpass")) != nil {
		t.Error("new hash must verify the new password")
	}
}

func TestUserService_Update_DeactivateViaPointer(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	created, _ := svc.Create(context.Background(), createInput("alice"))

	inactive := false
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Active: &inactive})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Active {
		t.Error("account must be deactivated")
	}

	// A nil Active pointer leaves the flag alone.
	again, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Name: "Alice C"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if again.Active {
		t.Error("nil Active must not resurrect the account")
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	_, err := svc.Update(context.Background(), "usr_missing", ports.UpdateUserInput{Name: "x"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	created, _ := svc.Create(context.Background(), createInput("alice"))
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound after delete, got %v", err)
	}
}
