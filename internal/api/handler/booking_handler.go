package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
)

// BookingHandler handles HTTP requests for workstation bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /v1/workstations/:id/bookings.
//
// @Summary      Book a workstation
// @Description  Validates the request, computes the cost and persists the booking.
// @Description  The confirmation email is sent in the background; its outcome never
// @Description  affects this response. Clients should show the message for at least
// @Description  next.delayMs before navigating to next.path.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Workstation ID"
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  confirmationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/workstations/{id}/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	pcID, err := pathPCID(c)
	if err != nil {
		return err
	}
	owner, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	conf, err := h.service.Book(c.Request().Context(), owner, domain.BookingRequest{
		ResourceID: pcID,
		Date:       req.Date,
		Time:       req.Time,
		Duration:   req.Duration,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toConfirmationResponse(conf))
}

// ListAll handles GET /v1/admin/workstation-bookings.
//
// @Summary      List every workstation booking
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/admin/workstation-bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	list, err := h.service.ListAllWorkstationBookings(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingsResponse(list))
}
