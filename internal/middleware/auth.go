package middleware

import (
	"strings"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/ramorim1998/gerador-times-back/internal/services"
)

const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

type IdentityDecoderInterface interface {
	Decode(token string) (*services.Identity, error)
}

// Auth resolves the caller from the bearer token. The token is decoded, not
// verified: the resulting identity is whatever the token claims.
func Auth(decoder IdentityDecoderInterface) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		identity, err := decoder.Decode(strings.TrimSpace(parts[1]))
		if err != nil {
			c.Unauthorized("invalid token")
			return
		}

		c.Set(UserIDKey, identity.UserID)
		c.Set(UserEmailKey, identity.Email)

		c.Next()
	}
}

func GetUserID(c *drift.Context) string {
	if id, ok := c.Get(UserIDKey); ok {
		if uid, ok := id.(string); ok {
			return uid
		}
	}
	return ""
}

func GetUserEmail(c *drift.Context) string {
	if email, ok := c.Get(UserEmailKey); ok {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}
