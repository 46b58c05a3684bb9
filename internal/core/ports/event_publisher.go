package ports

import (
	"context"

	"github.com/payetonkawa/clients-api/internal/core/domain"
)

// EventPublisher delivers change notifications to the message broker.
// Delivery is best-effort: the caller decides whether a publish failure
// matters. Payloads are validated before serialization; a contract violation
// surfaces as an error wrapping domain.ErrInvalidEvent.
type EventPublisher interface {
	PublishCreated(ctx context.Context, c *domain.Client) error
	PublishUpdated(ctx context.Context, c *domain.Client) error
	PublishDeleted(ctx context.Context, id string) error
}

// EventHandler processes one consumed change event. A non-nil return leaves
// the message unacknowledged so the broker redelivers it.
type EventHandler func(ctx context.Context, event domain.ClientEvent) error

// EventConsumer subscribes to one event kind and invokes the handler for each
// message, acknowledging only after the handler returns without error.
// Consume blocks until ctx is cancelled or the subscription breaks.
type EventConsumer interface {
	Consume(ctx context.Context, kind domain.EventKind, handler EventHandler) error
}
