package middleware

import (
	"net/http"
	"strings"

	"github.com/m0derNik/FromsApp-Backend/internal/services"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// JWTAuth rejects requests without a valid bearer token and stores the
// resolved actor on the context.
func JWTAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := actorFromHeader(c, authService)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// OptionalAuth resolves the actor when a token is present but lets
// anonymous requests through. Public listing and search rely on it.
func OptionalAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor, err := actorFromHeader(c, authService); err == nil {
			c.Set(actorKey, actor)
		}
		c.Next()
	}
}

// AdminOnly must run after JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Actor(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// Actor returns the authenticated caller, or nil for anonymous requests.
func Actor(c *gin.Context) *services.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(*services.Actor); ok {
			return actor
		}
	}
	return nil
}

func actorFromHeader(c *gin.Context, authService *services.AuthService) (*services.Actor, error) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, services.ErrAuthRequired
	}
	return authService.ValidateToken(parts[1])
}
