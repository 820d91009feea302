package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskie/internal/model"
	"taskie/pkg/response"
)

const scopeKey = "taskie.scope"

// Auth requires a valid session token in the Authorization header. Taskie
// clients send the token bare; a "Bearer " prefix is accepted too.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("Authorization"))
		if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
			token = strings.TrimSpace(token[7:])
		}
		if token == "" {
			response.Unauthorized(c)
			return
		}

		sc, err := mw.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			mw.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
