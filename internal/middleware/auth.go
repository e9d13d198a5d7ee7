package middleware

import (
	"context"
	"strings"

	"quiz_arena_backend/internal/config"
	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TokenRevocations answers whether a token's JTI has been revoked by logout.
type TokenRevocations interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware parses the bearer token and stores the claims in the
// request context. Runs before any body validation: a missing or invalid
// token rejects the request outright.
func AuthMiddleware(cfg *config.Config, revocations TokenRevocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if revocations != nil {
			revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil || revoked {
				util.Unauthorized(c)
				c.Abort()
				return
			}
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware gates a route group on the caller's role. Catalog mutation
// routes use it with model.Creator.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c, "Access denied. Only creators can perform this action.")
			c.Abort()
			return
		}
		c.Next()
	}
}
