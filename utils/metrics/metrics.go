// Package metrics provides Prometheus metrics for feed ingestion.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "feedhub"

var (
	// IngestionRunsTotal counts ingestion runs by outcome.
	IngestionRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingestion_runs_total",
			Help:      "Total number of feed ingestion runs",
		},
		[]string{"status"},
	)

	// IngestionDuration measures a whole fetch-parse-merge run.
	IngestionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingestion_duration_seconds",
			Help:      "Duration of feed ingestion runs in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	// FeedItemsTotal counts item-level outcomes of ingestion.
	FeedItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_items_total",
			Help:      "Total number of feed items created, updated or skipped",
		},
		[]string{"action"},
	)

	// FetchTotal counts outbound feed fetches.
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Total number of feed HTTP fetches",
		},
		[]string{"purpose", "status"},
	)

	// JobsTotal counts queue transitions.
	JobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingestion_jobs_total",
			Help:      "Total number of ingestion jobs by state transition",
		},
		[]string{"state"},
	)

	// QueueInFlight tracks feeds queued, running or waiting for retry.
	QueueInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ingestion_queue_in_flight",
			Help:      "Number of feeds currently queued, running or awaiting retry",
		},
	)

	// EventsTotal counts domain events delivered to subscribers.
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Total number of domain events handled by subscribers",
		},
		[]string{"event_type", "subscriber", "status"},
	)

	// ScheduledRunsTotal counts periodic job executions such as the ingestion sweep.
	ScheduledRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduled_runs_total",
			Help:      "Total number of scheduled job runs by job and outcome",
		},
		[]string{"job", "status"},
	)

	// RegistrationsTotal counts feed registration attempts.
	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Total number of feed registration attempts",
		},
		[]string{"status"},
	)
)

func RecordIngestion(status string, seconds float64) {
	IngestionRunsTotal.WithLabelValues(status).Inc()
	IngestionDuration.Observe(seconds)
}

func RecordItems(created, updated, skipped int) {
	FeedItemsTotal.WithLabelValues("created").Add(float64(created))
	FeedItemsTotal.WithLabelValues("updated").Add(float64(updated))
	FeedItemsTotal.WithLabelValues("skipped").Add(float64(skipped))
}

func RecordFetch(purpose, status string) {
	FetchTotal.WithLabelValues(purpose, status).Inc()
}

func RecordJob(state string) {
	JobsTotal.WithLabelValues(state).Inc()
}

func RecordScheduledRun(job, status string) {
	ScheduledRunsTotal.WithLabelValues(job, status).Inc()
}

func RecordEvent(eventType, subscriber, status string) {
	EventsTotal.WithLabelValues(eventType, subscriber, status).Inc()
}

func RecordRegistration(status string) {
	RegistrationsTotal.WithLabelValues(status).Inc()
}
