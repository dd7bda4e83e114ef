// Package metrics exposes Prometheus counters for the pending expense lifecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "upi_expenses"

// Result label values for ExpensesResolved.
const (
	ResultApplied         = "applied"
	ResultAlreadyResolved = "already_resolved"
)

// ExpensesInitiated counts pending expenses created ahead of a UPI redirect.
var ExpensesInitiated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "pending",
	Name:      "initiated_total",
	Help:      "Total pending expenses created.",
})

// ExpensesResolved counts resolve calls by reported outcome and whether they changed the record.
var ExpensesResolved = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "pending",
	Name:      "resolved_total",
	Help:      "Total resolve calls by outcome and result.",
}, []string{"outcome", "result"})

// ExpensesExpired counts pending expenses moved to EXPIRED by the sweep.
var ExpensesExpired = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "pending",
	Name:      "expired_total",
	Help:      "Total pending expenses expired without a reported outcome.",
})

// ObserveResolve records one resolve call.
func ObserveResolve(outcome string, changed bool) {
	result := ResultAlreadyResolved
	if changed {
		result = ResultApplied
	}
	ExpensesResolved.WithLabelValues(outcome, result).Inc()
}
