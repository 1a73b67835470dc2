// Package metrics holds the Prometheus collectors of the application.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "unique_checker"

// Metrics groups the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// ReconcileOutcomes counts reconcile decisions by action.
	ReconcileOutcomes *prometheus.CounterVec
	// RemoteRequests counts trade API calls by endpoint and outcome (ok, error).
	RemoteRequests *prometheus.CounterVec
	// RemoteRetries counts retried trade API calls by endpoint.
	RemoteRetries *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ReconcileOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_outcomes_total",
			Help:      "Reconcile decisions by action.",
		}, []string{"action"}),
		RemoteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_requests_total",
			Help:      "Trade API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		RemoteRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_retries_total",
			Help:      "Retried trade API requests by endpoint.",
		}, []string{"endpoint"}),
	}

	m.registry.MustRegister(m.ReconcileOutcomes, m.RemoteRequests, m.RemoteRetries)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one remote call.
func (m *Metrics) ObserveRequest(endpoint string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.RemoteRequests.WithLabelValues(endpoint, outcome).Inc()
}

// ObserveRetry records one retried remote call.
func (m *Metrics) ObserveRetry(endpoint string) {
	if m == nil {
		return
	}
	m.RemoteRetries.WithLabelValues(endpoint).Inc()
}

// ObserveOutcome records one reconcile decision.
func (m *Metrics) ObserveOutcome(action string) {
	if m == nil {
		return
	}
	m.ReconcileOutcomes.WithLabelValues(action).Inc()
}
