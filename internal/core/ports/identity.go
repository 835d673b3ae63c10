package ports

import "github.com/spacehub/booking-portal/internal/core/domain"

// IdentityListener receives identity changes. ok is false when the session
// has no authenticated user.
type IdentityListener func(id domain.Identity, ok bool)

// IdentitySource pushes the current identity to subscribers.
type IdentitySource interface {
	Subscribe(fn IdentityListener) (unsubscribe func())
}

// HistoryView consumes the results of the session coordinator.
type HistoryView interface {
	ShowHistory(h domain.AggregatedHistory)
	RedirectToLogin()
}
