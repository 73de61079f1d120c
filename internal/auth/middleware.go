package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foundersight/internal/config"
)

type ctxKey int

const identityKey ctxKey = 1

// UserIDFromContext returns the authenticated owner identity.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityKey).(string)
	return id, ok && id != ""
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, identityKey, userID)
}

// Middleware verifies bearer tokens on /api/* routes and injects the
// user identity into the request context. Infra endpoints stay open.
// With cfg.Disabled the fixed dev identity is used instead.
func Middleware(cfg config.AuthConfig) gin.HandlerFunc {
	j := JWT{Secret: []byte(cfg.Secret)}

	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if p == "/healthz" || p == "/readyz" || p == "/docs" || strings.HasPrefix(p, "/swagger") {
			c.Next()
			return
		}
		if !strings.HasPrefix(p, "/api/") {
			c.Next()
			return
		}

		if cfg.Disabled {
			c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), cfg.DevUserID))
			c.Next()
			return
		}

		tok := bearerToken(c.GetHeader("Authorization"))
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := j.Verify(tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), claims.Subject))
		c.Next()
	}
}

func bearerToken(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	parts := strings.SplitN(v, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
