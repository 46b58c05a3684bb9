// Package metrics defines and registers all custom Prometheus metrics for the
// clients API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clients"

// ── Record metrics ────────────────────────────────────────────────────────────

// ClientsCreatedTotal counts successfully created client records.
var ClientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of client records created.",
	},
)

// ClientsUpdatedTotal counts successfully applied partial updates.
var ClientsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updated_total",
		Help:      "Total number of client records updated.",
	},
)

// ClientsDeletedTotal counts successful deletions.
var ClientsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of client records deleted.",
	},
)

// ── Event metrics ─────────────────────────────────────────────────────────────

// EventsPublishedTotal counts change events delivered to the broker.
// Label:
//   - kind: "created", "updated", or "deleted"
var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Total number of change events published, by kind.",
	},
	[]string{"kind"},
)

// EventsPublishErrorsTotal counts publish attempts that failed after the
// store mutation had already committed.
// Label:
//   - kind: "created", "updated", or "deleted"
var EventsPublishErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_publish_errors_total",
		Help:      "Total number of failed change-event publish attempts, by kind.",
	},
	[]string{"kind"},
)

// EventsConsumedTotal counts change events processed by the consumer.
// Labels:
//   - kind: "created", "updated", or "deleted"
//   - result: "processed", "duplicate", or "error"
var EventsConsumedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_consumed_total",
		Help:      "Total number of change events consumed, by kind and result.",
	},
	[]string{"kind", "result"},
)
