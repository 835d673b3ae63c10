package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
)

// CatalogReader exposes the static workstation catalog.
type CatalogReader interface {
	List() []domain.CatalogEntry
	Find(id int) (domain.CatalogEntry, bool)
}

// CatalogHandler serves the workstation catalog and per-PC schedules.
type CatalogHandler struct {
	catalog  CatalogReader
	bookings ports.BookingService
}

func NewCatalogHandler(catalog CatalogReader, bookings ports.BookingService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, bookings: bookings}
}

// List handles GET /v1/workstations.
//
// @Summary      List bookable workstations
// @Tags         workstations
// @Produce      json
// @Success      200  {array}   catalogEntryResponse
// @Router       /v1/workstations [get]
func (h *CatalogHandler) List(c echo.Context) error {
	entries := h.catalog.List()
	out := make([]catalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toCatalogEntryResponse(e))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/workstations/:id.
//
// @Summary      Get a workstation
// @Tags         workstations
// @Produce      json
// @Param        id   path      int  true  "Workstation ID"
// @Success      200  {object}  catalogEntryResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/workstations/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := pathPCID(c)
	if err != nil {
		return err
	}
	entry, ok := h.catalog.Find(id)
	if !ok {
		return fmt.Errorf("pc %d: %w", id, domain.ErrResourceNotFound)
	}
	return c.JSON(http.StatusOK, toCatalogEntryResponse(entry))
}

// Schedule handles GET /v1/workstations/:id/schedule. Slots carry no owner.
//
// @Summary      Existing bookings of a workstation
// @Tags         workstations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Workstation ID"
// @Success      200  {array}   scheduleSlotResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/workstations/{id}/schedule [get]
func (h *CatalogHandler) Schedule(c echo.Context) error {
	id, err := pathPCID(c)
	if err != nil {
		return err
	}
	slots, err := h.bookings.ListResourceSchedule(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toScheduleResponse(slots))
}
