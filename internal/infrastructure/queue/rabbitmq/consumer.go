package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/payetonkawa/clients-api/internal/core/domain"
	"github.com/payetonkawa/clients-api/internal/core/ports"
)

// Consumer implements ports.EventConsumer. One Consume call owns one channel
// and one blocking delivery loop; messages are acknowledged only after the
// handler returns without error, so a crash mid-handler leaves the message
// on the queue for redelivery.
type Consumer struct {
	conn *amqp.Connection
	log  zerolog.Logger
}

func NewConsumer(conn *amqp.Connection, log zerolog.Logger) *Consumer {
	return &Consumer{conn: conn, log: log}
}

// Consume subscribes to the kind's queue and processes deliveries until ctx
// is cancelled or the channel closes.
func (c *Consumer) Consume(ctx context.Context, kind domain.EventKind, handler ports.EventHandler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	q, err := declareQueue(ch, kind)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", kind.QueueName(), err)
	}

	deliveries, err := ch.Consume(
		q.Name,
		"",    // consumer tag, broker-assigned
		false, // autoAck: we ack manually after the handler
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume %s: %w", q.Name, err)
	}

	c.log.Info().Str("queue", q.Name).Msg("consuming")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("consume %s: channel closed", q.Name)
			}
			c.handle(ctx, kind, d, handler)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, kind domain.EventKind, d amqp.Delivery, handler ports.EventHandler) {
	var event domain.ClientEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		// Malformed payloads can never succeed: drop without requeue.
		c.log.Error().Err(err).Str("queue", kind.QueueName()).Msg("undecodable event discarded")
		_ = d.Nack(false, false)
		return
	}

	if err := handler(ctx, event); err != nil {
		c.log.Warn().Err(err).
			Str("queue", kind.QueueName()).
			Str("client_id", event.ID).
			Msg("event handler failed, requeueing")
		_ = d.Nack(false, true)
		return
	}

	_ = d.Ack(false)
}
