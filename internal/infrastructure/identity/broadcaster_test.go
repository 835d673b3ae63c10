package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/pkg/token"
)

type event struct {
	id domain.Identity
	ok bool
}

func collect(b *Broadcaster) (*[]event, func()) {
	var got []event
	unsub := b.Subscribe(func(id domain.Identity, ok bool) {
		got = append(got, event{id, ok})
	})
	return &got, unsub
}

func TestBroadcaster_NoReplayBeforeFirstEvent(t *testing.T) {
	b := NewBroadcaster()
	got, _ := collect(b)
	assert.Empty(t, *got)
}

func TestBroadcaster_ReplaysCurrentState(t *testing.T) {
	b := NewBroadcaster()
	ana := domain.Identity{Email: "ana@example.com", Role: domain.RoleMember}
	b.SignIn(ana)

	got, _ := collect(b)
	require.Len(t, *got, 1)
	assert.Equal(t, event{ana, true}, (*got)[0])
}

func TestBroadcaster_PushesChangesUntilUnsubscribed(t *testing.T) {
	b := NewBroadcaster()
	got, unsub := collect(b)

	b.SignIn(domain.Identity{Email: "ana@example.com"})
	b.SignOut()
	unsub()
	unsub()
	b.SignIn(domain.Identity{Email: "bo@example.com"})

	require.Len(t, *got, 2)
	assert.True(t, (*got)[0].ok)
	assert.False(t, (*got)[1].ok)
}

func TestBroadcaster_BlankEmailIsAbsent(t *testing.T) {
	b := NewBroadcaster()
	got, _ := collect(b)

	b.SignIn(domain.Identity{Email: "   "})
	require.Len(t, *got, 1)
	assert.False(t, (*got)[0].ok)
}

func TestBroadcaster_SignInWithToken(t *testing.T) {
	b := NewBroadcaster()
	got, _ := collect(b)

	raw, err := token.Issue("secret", &domain.User{Email: "ana@example.com", Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, b.SignInWithToken("secret", raw))
	assert.Error(t, b.SignInWithToken("secret", "garbage"))

	require.Len(t, *got, 2)
	assert.Equal(t, event{domain.Identity{Email: "ana@example.com", Role: domain.RoleAdmin}, true}, (*got)[0])
	assert.False(t, (*got)[1].ok)
}
