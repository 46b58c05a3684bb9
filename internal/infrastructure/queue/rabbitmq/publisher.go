package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/payetonkawa/clients-api/internal/core/domain"
	"github.com/payetonkawa/clients-api/internal/metrics"
)

// Publisher implements ports.EventPublisher over AMQP. It validates each
// payload against the event kind's required-field contract before anything
// touches the wire; a contract violation aborts the publish and is reported,
// never swallowed.
type Publisher struct {
	conn     *amqp.Connection
	validate *validator.Validate
	log      zerolog.Logger
}

func NewPublisher(conn *amqp.Connection, log zerolog.Logger) *Publisher {
	return &Publisher{
		conn:     conn,
		validate: validator.New(),
		log:      log,
	}
}

func (p *Publisher) PublishCreated(ctx context.Context, c *domain.Client) error {
	return p.publish(ctx, domain.NewClientEvent(domain.EventCreated, c))
}

func (p *Publisher) PublishUpdated(ctx context.Context, c *domain.Client) error {
	return p.publish(ctx, domain.NewClientEvent(domain.EventUpdated, c))
}

func (p *Publisher) PublishDeleted(ctx context.Context, id string) error {
	return p.publish(ctx, domain.NewClientDeletedEvent(id))
}

func (p *Publisher) publish(ctx context.Context, event domain.ClientEvent) error {
	if err := ValidateEvent(p.validate, event); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Kind, err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	q, err := declareQueue(ch, event.Kind)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", event.Kind.QueueName(), err)
	}

	err = ch.PublishWithContext(ctx,
		"",     // default exchange
		q.Name, // routing key = queue name
		false,  // mandatory
		false,  // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", q.Name, err)
	}

	metrics.EventsPublishedTotal.WithLabelValues(string(event.Kind)).Inc()
	p.log.Debug().
		Str("queue", q.Name).
		Str("client_id", event.ID).
		Msg("event published")
	return nil
}

// ValidateEvent checks an event payload against its kind's contract:
// created and updated require a syntactically valid email alongside the full
// record; deleted requires only the id.
func ValidateEvent(v *validator.Validate, event domain.ClientEvent) error {
	if err := v.Struct(event); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
	}
	return nil
}
