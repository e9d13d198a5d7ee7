package service_test

import (
	"testing"
	"time"

	"quiz_arena_backend/internal/config"
	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/internal/service"
	"quiz_arena_backend/internal/util"
)

func newAuthService() (*service.AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return service.NewAuthService(users, cfg), users
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	svc, users := newAuthService()

	user := &model.User{Name: "Alice", Email: "alice@example.com", Password: "password123", Role: model.Player}
	token, err := svc.Register(user)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	stored, err := users.FindByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Password == "password123" {
		t.Fatalf("password stored in plaintext")
	}

	claims, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != stored.ID || claims.Role != model.Player {
		t.Fatalf("wrong claims: %+v", claims)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()

	first := &model.User{Name: "Alice", Email: "alice@example.com", Password: "password123", Role: model.Player}
	if _, err := svc.Register(first); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	second := &model.User{Name: "Impostor", Email: "alice@example.com", Password: "password456", Role: model.Creator}
	if _, err := svc.Register(second); err != util.ErrEmailRegistered {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newAuthService()

	user := &model.User{Name: "Alice", Email: "alice@example.com", Password: "password123", Role: "admin"}
	if _, err := svc.Register(user); err != util.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService()

	user := &model.User{Name: "Alice", Email: "alice@example.com", Password: "password123", Role: model.Creator}
	if _, err := svc.Register(user); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	loggedIn, token, err := svc.Login("alice@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || loggedIn.Email != "alice@example.com" {
		t.Fatalf("unexpected login result: user=%+v token=%q", loggedIn, token)
	}

	if _, _, err := svc.Login("alice@example.com", "wrong-password"); err != util.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "password123"); err != util.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCurrentUser(t *testing.T) {
	svc, users := newAuthService()

	user := &model.User{Name: "Alice", Email: "alice@example.com", Password: "password123", Role: model.Player}
	if _, err := svc.Register(user); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	stored, _ := users.FindByEmail("alice@example.com")
	got, err := svc.CurrentUser(stored.ID)
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Fatalf("wrong user: %+v", got)
	}

	if _, err := svc.CurrentUser(999); err != util.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
