package ports

import (
	"context"

	"github.com/payetonkawa/clients-api/internal/core/domain"
)

// ClientRepository defines persistence operations for client records.
//
// Every method that takes an id treats a malformed identifier exactly like a
// well-formed but absent one: domain.ErrClientNotFound, never a query error.
// Store-connectivity failures propagate as wrapped errors distinct from
// not-found.
type ClientRepository interface {
	// Insert persists a new record and returns it with the store-assigned id.
	Insert(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// FindAll returns all records. Order is whatever the store yields.
	FindAll(ctx context.Context) ([]*domain.Client, error)
	// UpdateByID applies only the non-nil fields of update and returns the
	// resulting full record.
	UpdateByID(ctx context.Context, id string, update domain.ClientUpdate) (*domain.Client, error)
	// DeleteByID reports whether a record was actually removed.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
