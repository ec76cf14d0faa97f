package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/loanlink-service/internal/domain"
	apperrors "github.com/spec-kit/loanlink-service/pkg/util"
)

const principalKey = "auth_principal"

// TokenCookieName is the cookie checked before the Authorization header.
const TokenCookieName = "token"

// Principal is the identity claim of a verified credential.
type Principal struct {
	Email string
	Role  domain.Role
}

// Middleware verifies bearer credentials and attaches the identity claim
// to the request for downstream role checks and handlers.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the credential verifier.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. The credential is
// taken from the token cookie first, then from "Authorization: Bearer".
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(TokenCookieName)
	if token == "" {
		if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			}
		}
	}

	if token == "" {
		return apperrors.NewUnauthenticated("no token provided")
	}

	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return apperrors.NewForbidden("invalid or expired token")
	}

	c.Locals(principalKey, &Principal{Email: claims.Email, Role: claims.Role})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
