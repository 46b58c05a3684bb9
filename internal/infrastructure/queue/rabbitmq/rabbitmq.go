// Package rabbitmq delivers and consumes client change events over AMQP.
//
// Each event kind has its own durable queue (client_created, client_updated,
// client_deleted). Publishing opens a fresh channel per call, declares the
// queue idempotently, sends with the persistent delivery flag, and releases
// the channel. The connection itself is long-lived and shared.
package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/payetonkawa/clients-api/internal/core/domain"
)

// Connect dials the broker and returns the shared connection.
func Connect(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	return conn, nil
}

// declareQueue declares the durable queue for a kind. Declaration is
// idempotent; the broker returns the existing queue when the arguments match.
func declareQueue(ch *amqp.Channel, kind domain.EventKind) (amqp.Queue, error) {
	return ch.QueueDeclare(
		kind.QueueName(),
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
}
