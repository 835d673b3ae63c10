package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyKey(t *testing.T) {
	assert.Equal(t, "notify:665f1c", notifyKey("665f1c"))
}

func TestNewNotificationDedup_DefaultTTL(t *testing.T) {
	d := NewNotificationDedup(nil, 0)
	assert.Equal(t, defaultDedupTTL, d.ttl)

	d = NewNotificationDedup(nil, time.Minute)
	assert.Equal(t, time.Minute, d.ttl)
}

func TestNotificationDedup_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer client.Close()
	d := NewNotificationDedup(client, time.Minute)

	dup, err := d.IsDuplicate(context.Background(), "b-1")
	require.Error(t, err)
	assert.False(t, dup)
	assert.Error(t, d.Mark(context.Background(), "b-1"))
}
