package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/loanlink-service/internal/domain"
	apperrors "github.com/spec-kit/loanlink-service/pkg/util"
)

// RequireRoles allows the request through only when the verified identity's
// role is a member of the given set. Admin reaches manager routes by being
// listed explicitly, not by rank. A missing identity is always a denial.
func RequireRoles(message string, allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewForbidden(message)
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden(message)
		}
		return c.Next()
	}
}

// RequireManager gates application-review routes.
func RequireManager() fiber.Handler {
	return RequireRoles("manager access only", domain.RoleManager, domain.RoleAdmin)
}

// RequireAdmin gates user-management routes.
func RequireAdmin() fiber.Handler {
	return RequireRoles("admin only access", domain.RoleAdmin)
}
