// Package identity is an in-process identity source. Sign-in and sign-out
// events are pushed to every subscriber; new subscribers receive the current
// state immediately.
package identity

import (
	"sync"

	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
	"github.com/spacehub/booking-portal/internal/pkg/token"
)

type Broadcaster struct {
	mu      sync.Mutex
	current domain.Identity
	known   bool
	ok      bool
	subs    map[uint64]ports.IdentityListener
	nextID  uint64
}

var _ ports.IdentitySource = (*Broadcaster)(nil)

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[uint64]ports.IdentityListener)}
}

// Subscribe registers fn. If an identity state is already known fn is called
// with it before Subscribe returns.
func (b *Broadcaster) Subscribe(fn ports.IdentityListener) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	known, current, ok := b.known, b.current, b.ok
	b.mu.Unlock()

	if known {
		fn(current, ok)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// SignIn publishes id as the current identity.
func (b *Broadcaster) SignIn(id domain.Identity) {
	b.publish(id, id.Resolved())
}

// SignInWithToken verifies raw and publishes the identity it carries. An
// invalid token signs the session out.
func (b *Broadcaster) SignInWithToken(secret, raw string) error {
	claims, err := token.Parse(secret, raw)
	if err != nil {
		b.SignOut()
		return err
	}
	b.SignIn(claims.Identity())
	return nil
}

// SignOut publishes the absence of an identity.
func (b *Broadcaster) SignOut() {
	b.publish(domain.Identity{}, false)
}

func (b *Broadcaster) publish(id domain.Identity, ok bool) {
	b.mu.Lock()
	b.current, b.ok, b.known = id, ok, true
	listeners := make([]ports.IdentityListener, 0, len(b.subs))
	for _, fn := range b.subs {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(id, ok)
	}
}
