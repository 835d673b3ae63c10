package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDedupTTL = 24 * time.Hour

// NotificationDedup remembers which bookings already had their confirmation
// email sent.
// Key format: notify:<booking_id>
type NotificationDedup struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNotificationDedup wraps client. A non-positive ttl selects a day.
func NewNotificationDedup(client *redis.Client, ttl time.Duration) *NotificationDedup {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &NotificationDedup{client: client, ttl: ttl}
}

// IsDuplicate reports whether a notification for bookingID was already sent.
func (d *NotificationDedup) IsDuplicate(ctx context.Context, bookingID string) (bool, error) {
	n, err := d.client.Exists(ctx, notifyKey(bookingID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that the notification for bookingID went out.
func (d *NotificationDedup) Mark(ctx context.Context, bookingID string) error {
	if err := d.client.Set(ctx, notifyKey(bookingID), "1", d.ttl).Err(); err != nil {
		return fmt.Errorf("dedup mark: %w", err)
	}
	return nil
}

func notifyKey(bookingID string) string {
	return "notify:" + bookingID
}
