// Package metrics holds the Prometheus collectors for lookups and insights.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeSuccess    = "success"
	OutcomeNotFound   = "not_found"
	OutcomeTransient  = "transient"
	OutcomeUnexpected = "unexpected"
	OutcomeGenuine    = "genuine"
	OutcomeFallback   = "fallback"
)

// Metrics is the set of application collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	lookups         *prometheus.CounterVec
	insights        *prometheus.CounterVec
	insightDuration prometheus.Histogram
	staleDiscarded  prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leximind",
			Name:      "lookups_total",
			Help:      "Dictionary lookups by outcome.",
		}, []string{"outcome"}),
		insights: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leximind",
			Name:      "insights_total",
			Help:      "Insight requests by outcome (genuine or fallback).",
		}, []string{"outcome"}),
		insightDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "leximind",
			Name:      "insight_duration_seconds",
			Help:      "Time spent producing insights, fallback included.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}),
		staleDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leximind",
			Name:      "stale_insights_discarded_total",
			Help:      "Results dropped because a newer search superseded them.",
		}),
	}

	reg.MustRegister(m.lookups, m.insights, m.insightDuration, m.staleDiscarded)
	return m
}

// ObserveLookup counts a dictionary lookup outcome.
func (m *Metrics) ObserveLookup(outcome string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(outcome).Inc()
}

// ObserveInsight counts an insight outcome and records how long it took.
func (m *Metrics) ObserveInsight(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.insights.WithLabelValues(outcome).Inc()
	m.insightDuration.Observe(d.Seconds())
}

// ObserveStaleDiscarded counts a superseded result.
func (m *Metrics) ObserveStaleDiscarded() {
	if m == nil {
		return
	}
	m.staleDiscarded.Inc()
}
