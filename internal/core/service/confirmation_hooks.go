package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/spacehub/booking-portal/internal/api/metrics"
	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
)

// BookingConfirmedKey is the routing key of confirmation events.
const BookingConfirmedKey = "booking.confirmed"

// DedupChecker remembers which bookings already had their email sent.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, bookingID string) (bool, error)
	Mark(ctx context.Context, bookingID string) error
}

// NotifyHook emails the owner of a confirmed booking.
type NotifyHook struct {
	notifier ports.Notifier
	dedup    DedupChecker
	log      zerolog.Logger
}

// NewNotifyHook builds the email hook. dedup may be nil.
func NewNotifyHook(notifier ports.Notifier, dedup DedupChecker, log zerolog.Logger) *NotifyHook {
	return &NotifyHook{notifier: notifier, dedup: dedup, log: log}
}

func (h *NotifyHook) Name() string { return "notify" }

func (h *NotifyHook) Run(ctx context.Context, c domain.Confirmation) error {
	key := c.Booking.ID
	if key == "" {
		key = c.AttemptID
	}

	if h.dedup != nil {
		dup, err := h.dedup.IsDuplicate(ctx, key)
		if err != nil {
			// dedup is best effort; an unreachable cache must not suppress the email
			h.log.Warn().Err(err).Str("booking_id", key).Msg("notification dedup check failed")
		} else if dup {
			metrics.NotificationsTotal.WithLabelValues("duplicate").Inc()
			h.log.Debug().Str("booking_id", key).Msg("notification already sent, skipping")
			return nil
		}
	}

	if err := h.notifier.Send(ctx, domain.ConfirmationNotification(c.Booking)); err != nil {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("send confirmation email: %w", err)
	}
	metrics.NotificationsTotal.WithLabelValues("sent").Inc()

	if h.dedup != nil {
		if err := h.dedup.Mark(ctx, key); err != nil {
			h.log.Warn().Err(err).Str("booking_id", key).Msg("failed to mark notification as sent")
		}
	}
	return nil
}

// BookingConfirmedEvent is the payload published for every confirmation.
type BookingConfirmedEvent struct {
	AttemptID   string    `json:"attemptId"`
	BookingID   string    `json:"bookingId"`
	PCID        int       `json:"pcId"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Duration    int       `json:"duration"`
	TotalCost   int64     `json:"totalCost"`
	UserEmail   string    `json:"userEmail"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}

// PublishHook announces confirmations on the event bus.
type PublishHook struct {
	publisher ports.EventPublisher
}

func NewPublishHook(publisher ports.EventPublisher) *PublishHook {
	return &PublishHook{publisher: publisher}
}

func (h *PublishHook) Name() string { return "publish" }

func (h *PublishHook) Run(ctx context.Context, c domain.Confirmation) error {
	evt := BookingConfirmedEvent{
		AttemptID:   c.AttemptID,
		BookingID:   c.Booking.ID,
		PCID:        c.Booking.PCID,
		Title:       c.Booking.Title,
		Date:        c.Booking.Date,
		Time:        c.Booking.Time,
		Duration:    c.Booking.Duration,
		TotalCost:   c.Booking.TotalCost,
		UserEmail:   string(c.Booking.Owner),
		ConfirmedAt: c.ConfirmedAt,
	}
	if err := h.publisher.PublishJSON(ctx, BookingConfirmedKey, evt); err != nil {
		return fmt.Errorf("publish %s: %w", BookingConfirmedKey, err)
	}
	return nil
}
