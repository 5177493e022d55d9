package middleware

import (
	"strings"

	"jobboard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxUserIDKey = "user_id"

// IdentityMiddleware resolves the caller's user ID from a bearer token
// when one is presented. The ranking endpoints serve anonymous callers
// too, so a missing or invalid token never rejects the request; it just
// leaves the identity unset.
type IdentityMiddleware struct {
	jwt jwt.Service
}

func NewIdentityMiddleware(jwtSvc jwt.Service) *IdentityMiddleware {
	return &IdentityMiddleware{jwt: jwtSvc}
}

func (m *IdentityMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m.jwt == nil {
			return c.Next()
		}

		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return c.Next()
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			return c.Next()
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
