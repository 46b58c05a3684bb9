package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/payetonkawa/clients-api/internal/core/domain"
)

const dedupTTL = time.Hour

// DedupChecker suppresses replayed change events on the consumer side.
// Queue delivery is at-least-once, so the same mutation can arrive more than
// once; the key is derived from the event kind, the record id, and the
// moment the event was emitted.
// Key format: dedup:<kind>:<client_id>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact event has already been handled.
func (d *DedupChecker) IsDuplicate(ctx context.Context, event domain.ClientEvent) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(event)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been handled (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, event domain.ClientEvent) error {
	return d.client.Set(ctx, d.key(event), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(event domain.ClientEvent) string {
	return fmt.Sprintf("dedup:%s:%s:%d", event.Kind, event.ID, event.OccurredAt.Unix())
}
