package interfaces

import (
	"context"
	"time"

	"mpbridge/internal/domain/entities"
)

// IEventRepository journals processed webhook events.
type IEventRepository interface {
	Save(ctx context.Context, event entities.Event) error
	ListByResourceID(ctx context.Context, resourceID string) ([]entities.Event, error)
}

// IEventPublisher fans processed events out to other services.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.Event) error
}

// IWebhookDeduper remembers notifications that were already handled.
//
// Seen marks the key and reports whether it was marked before. Forget drops
// the mark so a retried delivery is processed again.
type IWebhookDeduper interface {
	Seen(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Forget(ctx context.Context, key string) error
}

// IWebhookValidator verifies the x-signature header of a notification.
type IWebhookValidator interface {
	Validate(signature, requestID, dataID string) bool
}
