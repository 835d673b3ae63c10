package domain

import (
	"fmt"
	"time"
)

// BookingRequest is the raw user input for booking one catalog entry.
type BookingRequest struct {
	ResourceID int
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	Duration   int    // whole hours
}

// WorkstationBooking is a persisted workstation booking record.
type WorkstationBooking struct {
	ID        string   `json:"id,omitempty" bson:"_id,omitempty"`
	PCID      int      `json:"pcId" bson:"pcId"`
	Title     string   `json:"title" bson:"title"`
	Date      string   `json:"date" bson:"date"`
	Time      string   `json:"time" bson:"time"`
	Duration  int      `json:"duration" bson:"duration"`
	TotalCost int64    `json:"totalCost" bson:"totalCost"`
	Owner     OwnerKey `json:"userEmail" bson:"userEmail"`
}

// OwnerKey implements Owned.
func (b WorkstationBooking) OwnerKey() OwnerKey { return b.Owner }

// ValidatedBooking is a booking that passed completeness and time checks and
// carries its computed cost. Only the booking service constructs one.
type ValidatedBooking struct {
	WorkstationBooking
	StartsAt time.Time
}

// Transition is the view change a client performs after showing a
// confirmation for at least MinDisplay.
type Transition struct {
	Path       string
	MinDisplay time.Duration
}

// Confirmation signals that the datastore accepted a booking.
type Confirmation struct {
	AttemptID   string
	Booking     WorkstationBooking
	ConfirmedAt time.Time
	Message     string
	Next        Transition
}

// ConfirmationMessage is the inline success text shown to the user.
func ConfirmationMessage(b WorkstationBooking) string {
	return fmt.Sprintf("Booking confirmed for %s on %s at %s.", b.Title, b.Date, b.Time)
}

// Notification is a message for the email collaborator.
type Notification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ConfirmationNotification builds the email sent to the owner of b.
func ConfirmationNotification(b WorkstationBooking) Notification {
	return Notification{
		To:      string(b.Owner),
		Subject: fmt.Sprintf("Booking Confirmation for %s", b.Title),
		Message: fmt.Sprintf(
			"Your booking for %s on %s at %s for %d hours has been confirmed. Total Cost: $%d.",
			b.Title, b.Date, b.Time, b.Duration, b.TotalCost,
		),
	}
}
