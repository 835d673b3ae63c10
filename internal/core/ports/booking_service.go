package ports

import (
	"context"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

// ScheduleSlot is an existing booking of a resource with the owner removed.
type ScheduleSlot struct {
	PCID     int
	Date     string
	Time     string
	Duration int
}

// BookingService defines the booking workflow use cases.
type BookingService interface {
	Validate(ctx context.Context, owner domain.Identity, req domain.BookingRequest) (*domain.ValidatedBooking, error)
	Submit(ctx context.Context, attemptID string, v *domain.ValidatedBooking) (*domain.Confirmation, error)
	Book(ctx context.Context, owner domain.Identity, req domain.BookingRequest) (*domain.Confirmation, error)
	ListResourceSchedule(ctx context.Context, pcID int) ([]ScheduleSlot, error)
	ListAllWorkstationBookings(ctx context.Context, caller domain.Identity) ([]domain.WorkstationBooking, error)
}
