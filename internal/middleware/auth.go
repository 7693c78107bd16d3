package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"homework-planner/internal/model"
	"homework-planner/pkg/response"
)

const scopeContextKey = "auth.scope"

// Auth verifies the bearer token and stores the caller's Scope on the gin
// context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeContextKey, model.Scope{
			UserID:    claims.UserID,
			Username:  claims.Username,
			SessionID: claims.SessionID,
		})
		c.Next()
	}
}

// ScopeFromContext extracts the authenticated Scope set by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, exists := c.Get(scopeContextKey)
	if !exists {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
