// The consumer binary drains the three change-event queues. Each event is
// logged and counted; replays (the queues are at-least-once) are suppressed
// through a Redis dedup key before the message is acknowledged.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/payetonkawa/clients-api/internal/core/domain"
	"github.com/payetonkawa/clients-api/internal/infrastructure/config"
	redisdb "github.com/payetonkawa/clients-api/internal/infrastructure/db/redis"
	"github.com/payetonkawa/clients-api/internal/infrastructure/queue/rabbitmq"
	"github.com/payetonkawa/clients-api/internal/metrics"
	"github.com/payetonkawa/clients-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	rabbitConn, err := rabbitmq.Connect(cfg.Rabbit.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("rabbitmq connect failed")
	}
	defer rabbitConn.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	dedup := redisdb.NewDedupChecker(rdb)
	consumer := rabbitmq.NewConsumer(rabbitConn, log)

	// One blocking Consume loop per event kind, each in its own goroutine.
	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range []domain.EventKind{domain.EventCreated, domain.EventUpdated, domain.EventDeleted} {
		kind := kind
		g.Go(func() error {
			return consumer.Consume(gctx, kind, handleEvent(dedup, log))
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("consumer stopped")
	}
	log.Info().Msg("consumer shut down")
}

// handleEvent returns the per-message handler. Returning an error leaves the
// message unacknowledged so the broker redelivers it.
func handleEvent(dedup *redisdb.DedupChecker, log zerolog.Logger) func(ctx context.Context, event domain.ClientEvent) error {
	return func(ctx context.Context, event domain.ClientEvent) error {
		isDup, err := dedup.IsDuplicate(ctx, event)
		if err != nil {
			log.Warn().Err(err).Str("client_id", event.ID).Msg("dedup check failed, processing anyway")
		} else if isDup {
			metrics.EventsConsumedTotal.WithLabelValues(string(event.Kind), "duplicate").Inc()
			log.Debug().Str("client_id", event.ID).Str("event", string(event.Kind)).Msg("duplicate event skipped")
			return nil
		}

		log.Info().
			Str("event", string(event.Kind)).
			Str("client_id", event.ID).
			Str("email", event.Email).
			Msg("change event received")

		if err := dedup.Mark(ctx, event); err != nil {
			log.Warn().Err(err).Str("client_id", event.ID).Msg("failed to set dedup key")
		}
		metrics.EventsConsumedTotal.WithLabelValues(string(event.Kind), "processed").Inc()
		return nil
	}
}
