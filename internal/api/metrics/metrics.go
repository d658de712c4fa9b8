// Package metrics defines and registers all custom Prometheus metrics for
// the patient record service. It is the single source of truth for metric
// names, labels, and help strings. promauto registers everything with the
// default registry at package init, before the HTTP server starts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "patient_records"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", "disabled", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// PatientMutationsTotal counts successful writes to the patient store.
// Label:
//   - op: "create", "update", or "delete"
var PatientMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patient_mutations_total",
		Help:      "Total number of successful patient store mutations, by operation.",
	},
	[]string{"op"},
)

// AuthRejectionsTotal counts requests turned away by the auth gate.
// Label:
//   - reason: "missing_header", "bad_header", "bad_token", "unknown_user",
//     "disabled_user", or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization, by reason.",
	},
	[]string{"reason"},
)
