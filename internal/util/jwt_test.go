package util_test

import (
	"testing"
	"time"

	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/internal/util"
)

func testUser() *model.User {
	user := &model.User{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  model.Creator,
	}
	user.ID = 7
	return user
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := util.GenerateJWT(testUser(), "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := util.ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != 7 || claims.Role != model.Creator || claims.Email != "alice@example.com" {
		t.Fatalf("wrong claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected a jti for revocation")
	}
}

func TestJWTUniqueJTI(t *testing.T) {
	first, err := util.GenerateJWT(testUser(), "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	second, err := util.GenerateJWT(testUser(), "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	a, _ := util.ParseJWT(first, "secret")
	b, _ := util.ParseJWT(second, "secret")
	if a.ID == b.ID {
		t.Fatalf("tokens share a jti: %q", a.ID)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := util.GenerateJWT(testUser(), "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := util.ParseJWT(token, "other-secret"); err == nil {
		t.Fatalf("token verified with the wrong secret")
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := util.GenerateJWT(testUser(), "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := util.ParseJWT(token, "secret"); err == nil {
		t.Fatalf("expired token verified")
	}
}
