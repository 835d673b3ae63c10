package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spacehub/booking-portal/internal/core/ports"
)

type HistoryHandler struct {
	service ports.HistoryService
}

func NewHistoryHandler(service ports.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// Get handles GET /v1/history.
//
// @Summary      Booking history of the caller
// @Description  Room bookings, workstation bookings and food orders owned by the
// @Description  caller. A source that cannot be read yields an empty list and is
// @Description  named in unavailableSources; the request still succeeds.
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  historyResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/history [get]
func (h *HistoryHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	history, err := h.service.Load(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHistoryResponse(history))
}
