package sim

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the simulation's Prometheus collectors.
type Metrics struct {
	Replans       prometheus.Counter
	PlanFailures  prometheus.Counter
	PlanSeconds   prometheus.Histogram
	Decisions     *prometheus.CounterVec
	ExpandedNodes prometheus.Counter
	Skiers        prometheus.Gauge
	Lifts         prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if a collector is already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Replans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skisim_replans_total",
			Help: "Total number of successful skier plans",
		}),
		PlanFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skisim_plan_failures_total",
			Help: "Total number of skier plans that returned an error",
		}),
		PlanSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "skisim_plan_seconds",
			Help:    "Wall time of one skier plan",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skisim_decisions_total",
				Help: "Decisions chosen by skier plans",
			},
			[]string{"decision"},
		),
		ExpandedNodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skisim_expanded_nodes_total",
			Help: "Graph nodes expanded by path searches",
		}),
		Skiers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "skisim_skiers",
			Help: "Number of skiers in the world",
		}),
		Lifts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "skisim_lifts",
			Help: "Number of lifts in the world",
		}),
	}
	reg.MustRegister(
		m.Replans,
		m.PlanFailures,
		m.PlanSeconds,
		m.Decisions,
		m.ExpandedNodes,
		m.Skiers,
		m.Lifts,
	)

	return m
}
