// Package metrics is the single source of truth for the service's custom
// Prometheus metric names, labels, and help strings. promauto registers
// everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lending"

// LoansByTransition counts completed lifecycle transitions.
// Label:
//   - transition: "requested", "approved", "repaid", "defaulted"
var LoansByTransition = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loan_transitions_total",
		Help:      "Total number of completed loan lifecycle transitions.",
	},
	[]string{"transition"},
)

// OperationErrorsTotal counts failed lifecycle operations.
// Labels:
//   - op: the public operation ("request", "approve", "repay", "check_default", "verify_user")
//   - reason: coarse failure class ("unauthorized", "not_found", "already_finalized", "precondition", "internal")
var OperationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operation_errors_total",
		Help:      "Total number of failed lifecycle operations, by operation and reason.",
	},
	[]string{"op", "reason"},
)
