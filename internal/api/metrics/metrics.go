// Package metrics defines and registers all custom Prometheus metrics for the
// salon API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry via promauto at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon"

// ── Sales metrics ─────────────────────────────────────────────────────────────

// TransactionsCreatedTotal counts successfully recorded sales.
// Label:
//   - payment_method: "cash", "card", or "other"
var TransactionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_created_total",
		Help:      "Total number of point-of-sale transactions recorded.",
	},
	[]string{"payment_method"},
)

// TransactionsRejectedTotal counts sales rejected by server-side validation.
// Label:
//   - field: the offending field reported in the validation error
var TransactionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_rejected_total",
		Help:      "Total number of transaction payloads rejected by validation.",
	},
	[]string{"field"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// GuardRedirectsTotal counts page-guard redirects at the network edge.
// Label:
//   - reason: "unauthenticated" or "role_denied"
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of page requests redirected by the access guard.",
	},
	[]string{"reason"},
)

// ── Background work ───────────────────────────────────────────────────────────

// TouchJobsTotal counts customer denormalization jobs processed by the
// dispatcher workers.
// Labels:
//   - kind: "last_visit" or "consultation_completed"
//   - result: "success" or "failure"
var TouchJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "touch_jobs_total",
		Help:      "Total number of customer touch jobs processed, by kind and result.",
	},
	[]string{"kind", "result"},
)

// ── Reporting ─────────────────────────────────────────────────────────────────

// ReportsGeneratedTotal counts report runs.
var ReportsGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of sales reports generated.",
	},
)
