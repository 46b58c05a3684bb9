package ports

import (
	"context"

	"github.com/payetonkawa/clients-api/internal/core/domain"
)

// CreateClientInput carries all data needed to create a new client record.
// The id is always store-assigned.
type CreateClientInput struct {
	Name     string
	Email    string
	Company  string
	Phone    string
	IsActive bool
}

// ClientService defines the use-case operations over client records and owns
// the consistency contract between the store and the event queue: persist
// first, publish second, and only when persistence succeeded.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id string, update domain.ClientUpdate) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}
