package ports

import (
	"context"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

// Notifier delivers a message through the email collaborator.
type Notifier interface {
	Send(ctx context.Context, n domain.Notification) error
}

// EventPublisher publishes domain events to the message broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}
