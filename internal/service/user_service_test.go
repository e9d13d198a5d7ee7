package service_test

import (
	"testing"

	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/internal/service"
	"quiz_arena_backend/internal/util"
)

func TestUpdateName(t *testing.T) {
	users := newFakeUserRepo()
	user := &model.User{Name: "Alice", Email: "alice@example.com", Role: model.Player}
	if err := users.Create(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := service.NewUserService(users)

	updated, err := svc.UpdateName(user.ID, "Alicia")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Alicia" {
		t.Fatalf("expected renamed user, got %q", updated.Name)
	}
	if updated.Email != "alice@example.com" || updated.Role != model.Player {
		t.Fatalf("email and role must stay fixed: %+v", updated)
	}

	if _, err := svc.UpdateName(999, "Nobody"); err != util.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSetAvatar(t *testing.T) {
	users := newFakeUserRepo()
	user := &model.User{Name: "Alice", Email: "alice@example.com", Role: model.Player}
	if err := users.Create(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := service.NewUserService(users)

	updated, err := svc.SetAvatar(user.ID, "/uploads/avatars/1_123.png")
	if err != nil {
		t.Fatalf("set avatar failed: %v", err)
	}
	if updated.Avatar != "/uploads/avatars/1_123.png" {
		t.Fatalf("avatar not applied: %q", updated.Avatar)
	}
}
