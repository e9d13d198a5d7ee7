package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quiz_arena_backend/internal/config"
	"quiz_arena_backend/internal/middleware"
	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type fakeRevocations struct {
	revoked map[string]bool
}

func (f *fakeRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func issueToken(t *testing.T, role model.UserRole) string {
	t.Helper()
	user := &model.User{Name: "Alice", Email: "alice@example.com", Role: role}
	user.ID = 7
	token, err := util.GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func newAuthRouter(cfg *config.Config, revocations middleware.TokenRevocations) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(cfg, revocations), func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	r.GET("/creator-only",
		middleware.AuthMiddleware(cfg, revocations),
		middleware.RoleMiddleware(model.Creator),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := newAuthRouter(testConfig(), nil)

	if w := doGet(r, "/protected", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	r := newAuthRouter(testConfig(), nil)

	if w := doGet(r, "/protected", "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthRejectsTokenSignedWithOtherSecret(t *testing.T) {
	r := newAuthRouter(testConfig(), nil)

	user := &model.User{Role: model.Player}
	user.ID = 7
	forged, err := util.GenerateJWT(user, "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if w := doGet(r, "/protected", forged); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthRejectsRevokedToken(t *testing.T) {
	cfg := testConfig()
	token := issueToken(t, model.Player)
	claims, err := util.ParseJWT(token, cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	revocations := &fakeRevocations{revoked: map[string]bool{claims.ID: true}}
	r := newAuthRouter(cfg, revocations)

	if w := doGet(r, "/protected", token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", w.Code)
	}
}

func TestAuthPassesValidToken(t *testing.T) {
	r := newAuthRouter(testConfig(), &fakeRevocations{revoked: map[string]bool{}})

	if w := doGet(r, "/protected", issueToken(t, model.Player)); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRoleMiddlewareBlocksPlayers(t *testing.T) {
	r := newAuthRouter(testConfig(), nil)

	if w := doGet(r, "/creator-only", issueToken(t, model.Player)); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for player, got %d", w.Code)
	}
	if w := doGet(r, "/creator-only", issueToken(t, model.Creator)); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for creator, got %d", w.Code)
	}
}
