// Package metrics defines and registers the custom Prometheus metrics of the
// dashboard API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on import.
// HTTP request metrics come from echoprometheus and are wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GateDenialsTotal counts requests rejected by the role gate.
// Label:
//   - role: the role the route requires ("admin" or "client")
var GateDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_gate_denials_total",
		Help:      "Total number of requests denied by the authorization gate.",
	},
	[]string{"role"},
)

// ── Roster metrics ────────────────────────────────────────────────────────────

// RecordsCreatedTotal counts roster records created through the API.
// Label:
//   - kind: "client", "media", "notification" or "payment"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of roster records created, by kind.",
	},
	[]string{"kind"},
)

// NotificationsReadTotal counts notifications marked as read by clients.
var NotificationsReadTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_read_total",
		Help:      "Total number of notifications marked as read.",
	},
)
