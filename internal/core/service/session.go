package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
)

var ErrSessionClosed = errors.New("session closed")

// SessionCoordinator ties one user session to the identity source. Every
// identity change reloads the history; an absent identity redirects to login.
// Results of loads started for an earlier identity, or finishing after Close,
// are dropped.
type SessionCoordinator struct {
	source  ports.IdentitySource
	history ports.HistoryService
	booking ports.BookingService
	view    ports.HistoryView
	log     zerolog.Logger

	mu          sync.Mutex
	base        context.Context
	stop        context.CancelFunc
	cancelLoad  context.CancelFunc
	current     domain.Identity
	resolved    bool
	ready       chan struct{}
	gen         uint64
	closed      bool
	unsubscribe func()

	// serializes calls into view so Close can wait for an in-flight delivery
	viewMu sync.Mutex
}

func NewSessionCoordinator(
	source ports.IdentitySource,
	history ports.HistoryService,
	booking ports.BookingService,
	view ports.HistoryView,
	log zerolog.Logger,
) *SessionCoordinator {
	return &SessionCoordinator{
		source:  source,
		history: history,
		booking: booking,
		view:    view,
		log:     log,
		ready:   make(chan struct{}),
	}
}

// Start subscribes to the identity source. Loads run under ctx until Close.
func (s *SessionCoordinator) Start(ctx context.Context) {
	s.mu.Lock()
	s.base, s.stop = context.WithCancel(ctx)
	s.mu.Unlock()

	unsub := s.source.Subscribe(s.onIdentity)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		unsub()
		return
	}
	s.unsubscribe = unsub
	s.mu.Unlock()
}

// Identity returns the identity the session currently holds.
func (s *SessionCoordinator) Identity() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.resolved
}

// Refresh reloads the history for the current identity, if any.
func (s *SessionCoordinator) Refresh() {
	id, ok := s.Identity()
	if ok {
		s.onIdentity(id, true)
	}
}

// Book waits until an identity is resolved and then runs a booking attempt on
// its behalf.
func (s *SessionCoordinator) Book(ctx context.Context, req domain.BookingRequest) (*domain.Confirmation, error) {
	id, err := s.waitIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return s.booking.Book(ctx, id, req)
}

// Close unsubscribes, cancels any running load and waits for a delivery in
// progress to finish. Nothing reaches the view afterwards.
func (s *SessionCoordinator) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.cancelLoad != nil {
		s.cancelLoad()
		s.cancelLoad = nil
	}
	if s.stop != nil {
		s.stop()
	}
	if !s.resolved {
		close(s.ready)
	}
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}

	// wait out a delivery that passed its staleness check before closed was set
	s.viewMu.Lock()
	s.viewMu.Unlock()
}

func (s *SessionCoordinator) onIdentity(id domain.Identity, ok bool) {
	s.mu.Lock()
	if s.closed || s.base == nil {
		s.mu.Unlock()
		return
	}
	if s.cancelLoad != nil {
		s.cancelLoad()
		s.cancelLoad = nil
	}
	s.gen++
	gen := s.gen

	if !ok || !id.Resolved() {
		s.current = domain.Identity{}
		if s.resolved {
			s.ready = make(chan struct{})
		}
		s.resolved = false
		s.mu.Unlock()

		s.deliver(gen, func() { s.view.RedirectToLogin() })
		return
	}

	s.current = id
	if !s.resolved {
		close(s.ready)
	}
	s.resolved = true
	ctx, cancel := context.WithCancel(s.base)
	s.cancelLoad = cancel
	s.mu.Unlock()

	go s.load(ctx, gen, id)
}

func (s *SessionCoordinator) load(ctx context.Context, gen uint64, id domain.Identity) {
	h, err := s.history.Load(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("owner", id.Email).Msg("history load failed")
		return
	}
	delivered := s.deliver(gen, func() { s.view.ShowHistory(h) })
	if !delivered {
		s.log.Debug().Str("owner", id.Email).Msg("discarding stale history")
	}
}

// deliver runs fn against the view if gen is still the latest identity
// generation and the session is open.
func (s *SessionCoordinator) deliver(gen uint64, fn func()) bool {
	s.viewMu.Lock()
	defer s.viewMu.Unlock()

	s.mu.Lock()
	current := !s.closed && gen == s.gen
	s.mu.Unlock()
	if !current {
		return false
	}
	fn()
	return true
}

func (s *SessionCoordinator) waitIdentity(ctx context.Context) (domain.Identity, error) {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return domain.Identity{}, ErrSessionClosed
		}
		if s.resolved {
			id := s.current
			s.mu.Unlock()
			return id, nil
		}
		ready := s.ready
		s.mu.Unlock()

		select {
		case <-ready:
		case <-ctx.Done():
			return domain.Identity{}, ctx.Err()
		}
	}
}
