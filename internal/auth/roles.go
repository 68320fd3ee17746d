package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KoshiiX/Layanan-1/internal/domain"
	apperrors "github.com/KoshiiX/Layanan-1/pkg/util"
)

// RequireRole gates a route group on the caller's role. It runs after
// Handle, so the principal is already loaded; unauthorized callers never
// reach a handler.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.User.Role != required {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
