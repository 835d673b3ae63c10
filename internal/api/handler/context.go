package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/spacehub/booking-portal/internal/api/middleware"
	"github.com/spacehub/booking-portal/internal/core/domain"
)

// ctxIdentity returns the caller injected by the Auth middleware. A missing
// email means the route was mounted without Auth or the token carried none.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	email, _ := c.Get(middleware.KeyEmail).(string)
	role, _ := c.Get(middleware.KeyRole).(string)
	id := domain.Identity{Email: email, Role: role}
	if !id.Resolved() {
		return domain.Identity{}, domain.ErrIdentityRequired
	}
	return id, nil
}

// pathPCID parses the :id route parameter. Anything that is not an integer
// cannot name a catalog entry.
func pathPCID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, domain.ErrResourceNotFound
	}
	return id, nil
}
