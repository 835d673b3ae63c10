package ports

import (
	"context"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

// ConfirmationHook runs after a booking has been confirmed. Hook errors are
// logged by the runner and never reach the user.
type ConfirmationHook interface {
	Name() string
	Run(ctx context.Context, c domain.Confirmation) error
}

// ConfirmationSink accepts confirmations for asynchronous follow-up.
// Enqueue must not block the caller.
type ConfirmationSink interface {
	Enqueue(c domain.Confirmation)
}
