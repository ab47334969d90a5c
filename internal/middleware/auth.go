package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"personal-task-management/internal/model"
	"personal-task-management/pkg/response"
)

// scopeKey is the gin context key holding the authenticated model.Scope.
const scopeKey = "scope"

// Auth verifies the Bearer session token and stores the resulting scope on
// the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.tokens.Verify(token)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "rejected session token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: payload.UserID})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by Auth. An empty scope means
// the route was not guarded.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
