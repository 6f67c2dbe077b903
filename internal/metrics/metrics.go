// Package metrics defines and registers all custom Prometheus metrics for
// the tienda inventory app. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// initialisation; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tienda"

// Outcome labels for BackendCallsTotal.
const (
	OutcomeSuccess        = "success"
	OutcomeBackendError   = "backend_error"
	OutcomeTransportError = "transport_error"
)

// ── Backend call metrics ──────────────────────────────────────────────────────

// BackendCallsTotal counts calls made through the API normalizer.
// Labels:
//   - method: HTTP method (e.g. "GET")
//   - outcome: "success", "backend_error" or "transport_error"
var BackendCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_calls_total",
		Help:      "Total number of backend calls, by method and outcome.",
	},
	[]string{"method", "outcome"},
)

// BackendCallDuration measures the round-trip time of one backend call.
// Label:
//   - method: HTTP method
var BackendCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_call_duration_seconds",
		Help:      "Duration of backend calls from dispatch to settlement.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionTransitionsTotal counts session lifecycle events.
// Label:
//   - event: "login", "logout" or "expired"
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session lifecycle transitions.",
	},
	[]string{"event"},
)

// GuardDecisionsTotal counts route-guard outcomes.
// Label:
//   - decision: "allowed", "denied" or "pending"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by result.",
	},
	[]string{"decision"},
)
