package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/payetonkawa/clients-api/internal/core/domain"
	"github.com/payetonkawa/clients-api/internal/metrics"
	"github.com/payetonkawa/clients-api/internal/core/ports"
)

// ClientService orchestrates the store and the event publisher. The contract
// for every mutation is: persist first, publish second, and only when the
// persist succeeded. A publish failure never rolls back or fails the
// operation; it is logged and counted. There is no compensating transaction
// between store and queue.
type ClientService struct {
	repo      ports.ClientRepository
	publisher ports.EventPublisher
	log       zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, publisher ports.EventPublisher, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, publisher: publisher, log: log}
}

// Create inserts the record, then notifies the created queue.
func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	client := &domain.Client{
		Name:     input.Name,
		Email:    input.Email,
		Company:  input.Company,
		Phone:    input.Phone,
		IsActive: input.IsActive,
	}

	created, err := s.repo.Insert(ctx, client)
	if err != nil {
		s.log.Error().Err(err).Str("email", input.Email).Msg("failed to insert client")
		return nil, err
	}
	metrics.ClientsCreatedTotal.Inc()

	if err := s.publisher.PublishCreated(ctx, created); err != nil {
		s.notifyFailed(domain.EventCreated, created.ID, err)
	}

	s.log.Info().Str("client_id", created.ID).Msg("client created")
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.FindAll(ctx)
}

// Update applies the partial update and, on success, publishes the resulting
// full record. A store miss (including a concurrent delete) is not-found and
// produces no event.
func (s *ClientService) Update(ctx context.Context, id string, update domain.ClientUpdate) (*domain.Client, error) {
	updated, err := s.repo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}
	metrics.ClientsUpdatedTotal.Inc()

	if err := s.publisher.PublishUpdated(ctx, updated); err != nil {
		s.notifyFailed(domain.EventUpdated, updated.ID, err)
	}

	s.log.Info().Str("client_id", updated.ID).Msg("client updated")
	return updated, nil
}

// Delete removes the record and publishes an id-only deleted event. Deleting
// an absent record is not-found, no event.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrClientNotFound
	}
	metrics.ClientsDeletedTotal.Inc()

	if err := s.publisher.PublishDeleted(ctx, id); err != nil {
		s.notifyFailed(domain.EventDeleted, id, err)
	}

	s.log.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

// notifyFailed records a best-effort publish failure without affecting the
// outcome of the mutation that triggered it.
func (s *ClientService) notifyFailed(kind domain.EventKind, id string, err error) {
	metrics.EventsPublishErrorsTotal.WithLabelValues(string(kind)).Inc()
	s.log.Warn().Err(err).
		Str("client_id", id).
		Str("event", string(kind)).
		Msg("event publish failed, mutation already committed")
}
