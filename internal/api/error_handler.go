package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

// User-facing messages for booking outcomes.
const (
	msgIncompleteInput  = "Please select a valid date, time, and duration."
	msgPastDated        = "You cannot book a PC for a past date or time."
	msgNotFound         = "PC not found"
	msgRejected         = "Failed to book the PC. Please try again."
	msgSubmissionFailed = "An error occurred while booking. Please try again later."
	msgSignInRequired   = "Please sign in to continue."
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error    string `json:"error"`
	LoginURL string `json:"login_url,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes and user-facing messages.
//   - Sends callers without an identity to loginURL.
//   - Logs unexpected errors without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger, loginURL string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp, code := resolveError(err, log, c)
		if code == http.StatusUnauthorized && errors.Is(err, domain.ErrIdentityRequired) {
			resp.LoginURL = loginURL
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (errorResponse, int) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errorResponse{Error: fmt.Sprintf("%v", he.Message)}, he.Code
	}

	switch {
	case errors.Is(err, domain.ErrIncompleteInput):
		return errorResponse{Error: msgIncompleteInput}, http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrPastDatedBooking):
		return errorResponse{Error: msgPastDated}, http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrResourceNotFound):
		return errorResponse{Error: msgNotFound}, http.StatusNotFound
	case errors.Is(err, domain.ErrBookingRejected):
		return errorResponse{Error: msgRejected}, http.StatusConflict
	case errors.Is(err, domain.ErrSubmissionFailed):
		return errorResponse{Error: msgSubmissionFailed}, http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrDatastoreUnavailable):
		log.Warn().Err(err).Str("path", c.Path()).Msg("datastore unavailable")
		return errorResponse{Error: "datastore unavailable, please try again later"}, http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrIdentityRequired):
		return errorResponse{Error: msgSignInRequired}, http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return errorResponse{Error: "access forbidden"}, http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return errorResponse{Error: "invalid credentials"}, http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound):
		return errorResponse{Error: "user not found"}, http.StatusNotFound
	case errors.Is(err, domain.ErrUserExists):
		return errorResponse{Error: "user already exists"}, http.StatusConflict
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return errorResponse{Error: "internal server error"}, http.StatusInternalServerError
}
