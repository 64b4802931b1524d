package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/noticeboard/internal/models"
)

// ContextCallerKey is the gin context key storing the resolved caller.
const ContextCallerKey = "caller"

type sessionResolver interface {
	Resolve(ctx context.Context, token string) models.Caller
}

// Session resolves the session cookie into a caller for every request. A
// missing or invalid cookie yields the anonymous caller; it never blocks.
func Session(resolver sessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := models.Anonymous
		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			caller = resolver.Resolve(c.Request.Context(), token)
		}
		c.Set(ContextCallerKey, caller)
		c.Next()
	}
}

// CallerFrom returns the caller stored by Session, or the anonymous caller.
func CallerFrom(c *gin.Context) models.Caller {
	value, exists := c.Get(ContextCallerKey)
	if !exists {
		return models.Anonymous
	}
	caller, ok := value.(models.Caller)
	if !ok {
		return models.Anonymous
	}
	return caller
}
