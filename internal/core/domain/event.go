package domain

import "time"

// EventKind identifies one of the three change-notification queues.
type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// QueueName returns the durable queue a kind is delivered on.
func (k EventKind) QueueName() string {
	return "client_" + string(k)
}

// ClientEvent is the payload published after a successful mutation.
// Created and Updated carry the full stored record; Deleted carries only the
// id. The validate tags are the per-kind required-field contract enforced
// before anything reaches the broker.
type ClientEvent struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name,omitempty" validate:"required_unless=Kind deleted"`
	Email    string `json:"email,omitempty" validate:"required_unless=Kind deleted,omitempty,email"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"is_active"`

	Kind       EventKind `json:"event" validate:"required,oneof=created updated deleted"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewClientEvent builds the payload for a created or updated record.
func NewClientEvent(kind EventKind, c *Client) ClientEvent {
	return ClientEvent{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Company:    c.Company,
		Phone:      c.Phone,
		IsActive:   c.IsActive,
		Kind:       kind,
		OccurredAt: time.Now().UTC(),
	}
}

// NewClientDeletedEvent builds the payload for a deletion, which carries
// only the record id.
func NewClientDeletedEvent(id string) ClientEvent {
	return ClientEvent{
		ID:         id,
		Kind:       EventDeleted,
		OccurredAt: time.Now().UTC(),
	}
}
