// Package metrics defines and registers all custom Prometheus metrics for the
// booking portal. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// ── Booking workflow ──────────────────────────────────────────────────────────

// BookingAttemptsTotal counts finished booking attempts.
// Label:
//   - outcome: "confirmed", "rejected", "submission_failed", "validation_failed"
var BookingAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attempts_total",
		Help:      "Total number of booking attempts, by outcome.",
	},
	[]string{"outcome"},
)

// BookingValidationFailuresTotal counts rejected booking inputs.
// Label:
//   - reason: "incomplete_input", "past_dated", "not_found", "identity_required"
var BookingValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of booking requests that failed validation.",
	},
	[]string{"reason"},
)

// BookingRevenueTotal sums the total cost of confirmed bookings.
var BookingRevenueTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "confirmed_cost_total",
		Help:      "Sum of totalCost over confirmed bookings.",
	},
)

// ── History aggregation ───────────────────────────────────────────────────────

// HistorySourceFailuresTotal counts failed retrievals per history source.
// Label:
//   - source: "rooms", "workstations", "food_orders"
var HistorySourceFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "history_source_failures_total",
		Help:      "Total number of history source retrievals that failed.",
	},
	[]string{"source"},
)

// HistoryLoadDuration measures a full three-source history load.
var HistoryLoadDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "history_load_duration_seconds",
		Help:      "Duration of an aggregated history load across all sources.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Post-confirmation hooks ───────────────────────────────────────────────────

// NotificationsTotal counts confirmation email outcomes.
// Label:
//   - result: "sent", "failed", "duplicate"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of confirmation notifications, by result.",
	},
	[]string{"result"},
)

// HookQueueDepth tracks confirmations waiting in each hook worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var HookQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hook_queue_depth",
		Help:      "Current number of confirmations pending in each hook worker channel.",
	},
	[]string{"worker_id"},
)

// HookJobsDroppedTotal counts confirmations dropped because a worker queue was full.
var HookJobsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hook_jobs_dropped_total",
		Help:      "Total number of confirmations whose follow-up hooks were dropped.",
	},
)

// HookFailuresTotal counts hook runs that returned an error.
// Label:
//   - hook: the hook name (e.g. "notify", "publish")
var HookFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hook_failures_total",
		Help:      "Total number of post-confirmation hook runs that failed.",
	},
	[]string{"hook"},
)
