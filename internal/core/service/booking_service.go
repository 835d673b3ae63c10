package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spacehub/booking-portal/internal/api/metrics"
	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
)

const (
	defaultRedirectPath  = "/pcaccess"
	defaultRedirectDelay = 2 * time.Second
)

// startLayouts are the accepted date+time combinations, joined by a space.
var startLayouts = []string{"2006-01-02 15:04", "2006-01-02 15:04:05"}

// CatalogLookup resolves catalog entries by ID.
type CatalogLookup interface {
	Find(id int) (domain.CatalogEntry, bool)
}

// BookingOptions tunes the booking workflow. Zero values select defaults.
type BookingOptions struct {
	// Location is the zone date and time inputs are interpreted in.
	Location      *time.Location
	RedirectPath  string
	RedirectDelay time.Duration
	Now           func() time.Time
	NewAttemptID  func() string
}

// BookingService validates, persists and confirms workstation bookings.
type BookingService struct {
	catalog CatalogLookup
	store   ports.WorkstationBookingStore
	sink    ports.ConfirmationSink
	logger  zerolog.Logger

	location      *time.Location
	redirectPath  string
	redirectDelay time.Duration
	now           func() time.Time
	newAttemptID  func() string
}

// NewBookingService wires the booking workflow. sink may be nil, in which
// case confirmations have no follow-up.
func NewBookingService(
	catalog CatalogLookup,
	store ports.WorkstationBookingStore,
	sink ports.ConfirmationSink,
	logger zerolog.Logger,
	opts BookingOptions,
) *BookingService {
	s := &BookingService{
		catalog:       catalog,
		store:         store,
		sink:          sink,
		logger:        logger,
		location:      opts.Location,
		redirectPath:  opts.RedirectPath,
		redirectDelay: opts.RedirectDelay,
		now:           opts.Now,
		newAttemptID:  opts.NewAttemptID,
	}
	if s.location == nil {
		s.location = time.Local
	}
	if s.redirectPath == "" {
		s.redirectPath = defaultRedirectPath
	}
	if s.redirectDelay <= 0 {
		s.redirectDelay = defaultRedirectDelay
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newAttemptID == nil {
		s.newAttemptID = uuid.NewString
	}
	return s
}

// Validate checks a booking request for owner and turns it into a booking
// with its cost computed. It never touches the datastore.
func (s *BookingService) Validate(ctx context.Context, owner domain.Identity, req domain.BookingRequest) (*domain.ValidatedBooking, error) {
	entry, ok := s.catalog.Find(req.ResourceID)
	if !ok {
		return nil, fmt.Errorf("validate booking: pc %d: %w", req.ResourceID, domain.ErrResourceNotFound)
	}
	if !owner.Resolved() {
		return nil, domain.ErrIdentityRequired
	}

	date := strings.TrimSpace(req.Date)
	clock := strings.TrimSpace(req.Time)
	if date == "" || clock == "" || req.Duration <= 0 {
		return nil, domain.ErrIncompleteInput
	}
	if int64(req.Duration) > entry.MaxHours() {
		return nil, fmt.Errorf("%w: duration %d exceeds %d hours", domain.ErrIncompleteInput, req.Duration, entry.MaxHours())
	}

	startsAt, err := s.parseStart(date, clock)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIncompleteInput, err)
	}
	if !startsAt.After(s.now()) {
		return nil, domain.ErrPastDatedBooking
	}

	return &domain.ValidatedBooking{
		WorkstationBooking: domain.WorkstationBooking{
			PCID:      entry.ID,
			Title:     entry.Title,
			Date:      date,
			Time:      clock,
			Duration:  req.Duration,
			TotalCost: entry.CostFor(req.Duration),
			Owner:     owner.Owner(),
		},
		StartsAt: startsAt,
	}, nil
}

// Submit persists a validated booking and, once the datastore acknowledges
// it, hands the confirmation to the follow-up sink without waiting on it.
func (s *BookingService) Submit(ctx context.Context, attemptID string, v *domain.ValidatedBooking) (*domain.Confirmation, error) {
	if v == nil {
		return nil, fmt.Errorf("submit booking: %w", domain.ErrIncompleteInput)
	}

	ack, err := s.store.CreateWorkstationBooking(ctx, v.WorkstationBooking)
	if err != nil {
		s.logger.Error().Err(err).Str("attempt_id", attemptID).Int("pc_id", v.PCID).Msg("booking submission failed")
		return nil, fmt.Errorf("submit booking: %w: %w", domain.ErrSubmissionFailed, err)
	}
	if !ack.Acknowledged {
		s.logger.Warn().Str("attempt_id", attemptID).Int("pc_id", v.PCID).Msg("datastore did not acknowledge booking")
		return nil, fmt.Errorf("submit booking: %w", domain.ErrBookingRejected)
	}

	booking := v.WorkstationBooking
	booking.ID = ack.InsertedID

	conf := &domain.Confirmation{
		AttemptID:   attemptID,
		Booking:     booking,
		ConfirmedAt: s.now().UTC(),
		Message:     domain.ConfirmationMessage(booking),
		Next: domain.Transition{
			Path:       s.redirectPath,
			MinDisplay: s.redirectDelay,
		},
	}

	if s.sink != nil {
		s.sink.Enqueue(*conf)
	}

	metrics.BookingRevenueTotal.Add(float64(booking.TotalCost))
	s.logger.Info().
		Str("attempt_id", attemptID).
		Str("booking_id", booking.ID).
		Int("pc_id", booking.PCID).
		Int64("total_cost", booking.TotalCost).
		Msg("booking confirmed")

	return conf, nil
}

// Book runs one booking attempt from idle through validation and submission.
// Every call is a fresh attempt; failures leave nothing behind to retry.
func (s *BookingService) Book(ctx context.Context, owner domain.Identity, req domain.BookingRequest) (*domain.Confirmation, error) {
	attempt := domain.NewAttempt(s.newAttemptID())

	s.advance(attempt, domain.AttemptValidating)
	v, err := s.Validate(ctx, owner, req)
	if err != nil {
		s.advance(attempt, domain.AttemptValidationFailed)
		s.advance(attempt, domain.AttemptIdle)
		metrics.BookingValidationFailuresTotal.WithLabelValues(validationReason(err)).Inc()
		metrics.BookingAttemptsTotal.WithLabelValues("validation_failed").Inc()
		s.logger.Debug().Err(err).Str("attempt_id", attempt.ID).Int("pc_id", req.ResourceID).Msg("booking validation failed")
		return nil, err
	}
	s.advance(attempt, domain.AttemptValidated)

	s.advance(attempt, domain.AttemptSubmitting)
	conf, err := s.Submit(ctx, attempt.ID, v)
	if err != nil {
		s.advance(attempt, domain.AttemptRejected)
		s.advance(attempt, domain.AttemptIdle)
		outcome := "rejected"
		if errors.Is(err, domain.ErrSubmissionFailed) {
			outcome = "submission_failed"
		}
		metrics.BookingAttemptsTotal.WithLabelValues(outcome).Inc()
		return nil, err
	}
	s.advance(attempt, domain.AttemptConfirmed)
	metrics.BookingAttemptsTotal.WithLabelValues("confirmed").Inc()

	return conf, nil
}

// ListResourceSchedule returns the existing bookings of one workstation in
// source order with owner identities removed.
func (s *BookingService) ListResourceSchedule(ctx context.Context, pcID int) ([]ports.ScheduleSlot, error) {
	if _, ok := s.catalog.Find(pcID); !ok {
		return nil, fmt.Errorf("list schedule: pc %d: %w", pcID, domain.ErrResourceNotFound)
	}

	all, err := s.store.ListWorkstationBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w: %w", domain.ErrDatastoreUnavailable, err)
	}

	slots := make([]ports.ScheduleSlot, 0)
	for _, b := range all {
		if b.PCID != pcID {
			continue
		}
		slots = append(slots, ports.ScheduleSlot{PCID: b.PCID, Date: b.Date, Time: b.Time, Duration: b.Duration})
	}
	return slots, nil
}

// ListAllWorkstationBookings returns the unscoped collection. Only operators
// may see other users' records.
func (s *BookingService) ListAllWorkstationBookings(ctx context.Context, caller domain.Identity) ([]domain.WorkstationBooking, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	all, err := s.store.ListWorkstationBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workstation bookings: %w: %w", domain.ErrDatastoreUnavailable, err)
	}
	return all, nil
}

func (s *BookingService) parseStart(date, clock string) (time.Time, error) {
	var lastErr error
	for _, layout := range startLayouts {
		t, err := time.ParseInLocation(layout, date+" "+clock, s.location)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (s *BookingService) advance(a *domain.Attempt, next domain.AttemptState) {
	if err := a.Advance(next); err != nil {
		s.logger.Error().Err(err).Str("attempt_id", a.ID).Msg("booking attempt state machine violated")
	}
}

func validationReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrResourceNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrIdentityRequired):
		return "identity_required"
	case errors.Is(err, domain.ErrPastDatedBooking):
		return "past_dated"
	default:
		return "incomplete_input"
	}
}
