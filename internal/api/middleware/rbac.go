package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

// RBAC admits only callers whose role, as set by Auth, is one of
// allowedRoles. Anyone else gets domain.ErrForbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(KeyRole).(string)
			if _, ok := allowed[role]; !ok {
				return fmt.Errorf("role %q: %w", role, domain.ErrForbidden)
			}
			return next(c)
		}
	}
}
