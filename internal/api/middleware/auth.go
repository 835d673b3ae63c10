package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/pkg/token"
)

// Context keys set by Auth.
const (
	KeyEmail = "email"
	KeyRole  = "role"
)

// Auth validates the bearer token and injects the caller's identity into the
// context. Requests without a usable identity fail with
// domain.ErrIdentityRequired, which the error handler turns into a login
// redirect.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return fmt.Errorf("%w: missing authorization header", domain.ErrIdentityRequired)
			}

			raw, ok := token.FromHeader(authHeader)
			if !ok {
				return fmt.Errorf("%w: invalid authorization header", domain.ErrIdentityRequired)
			}

			claims, err := token.Parse(jwtSecret, raw)
			if err != nil {
				return fmt.Errorf("%w: %v", domain.ErrIdentityRequired, err)
			}

			c.Set(KeyEmail, claims.Email)
			c.Set(KeyRole, claims.Role)

			return next(c)
		}
	}
}
