// Package metrics exposes the edge's Prometheus counters and the /metrics
// handler.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vendly/edge/pkg/authgate"
	"github.com/vendly/edge/pkg/hostrouter"
)

const namespace = "edge"

// Metrics holds every collector the edge records into.
type Metrics struct {
	RouterDecisions *prometheus.CounterVec
	GateVerdicts    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewRegistry returns a registry with the Go runtime and process
// collectors already attached.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New creates and registers the edge collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RouterDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "router",
			Name:      "decisions_total",
			Help:      "Host router decisions by action and host scope.",
		}, []string{"action", "scope"}),
		GateVerdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gate",
			Name:      "verdicts_total",
			Help:      "Auth gate verdicts by route class and outcome.",
		}, []string{"class", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of requests served by the edge.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"code", "method"}),
	}
	reg.MustRegister(m.RouterDecisions, m.GateVerdicts, m.RequestDuration)
	return m
}

// RouterObserver counts host router decisions.
func (m *Metrics) RouterObserver() hostrouter.Observer {
	return func(_ context.Context, d hostrouter.Decision) {
		m.RouterDecisions.WithLabelValues(d.Action.String(), d.Scope.String()).Inc()
	}
}

// GateObserver counts auth gate verdicts.
func (m *Metrics) GateObserver() authgate.Observer {
	return func(_ context.Context, v authgate.Verdict) {
		m.GateVerdicts.WithLabelValues(v.Class.String(), v.Outcome.String()).Inc()
	}
}

// Instrument records request latency by status code and method.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(m.RequestDuration, next)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
