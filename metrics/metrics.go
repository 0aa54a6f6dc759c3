// Package metrics declares the Prometheus instruments of pathscope tools.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

var (
	Searches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathscope_searches_total",
		Help: "Shortest-path queries, labelled by outcome.",
	}, []string{"outcome"})

	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathscope_search_duration_seconds",
		Help:    "Time spent computing one shortest path.",
		Buckets: []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3},
	})

	PathHops = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathscope_path_hops",
		Help:    "Number of edges on each found path.",
		Buckets: prometheus.LinearBuckets(0, 1, 12),
	})

	AnimationTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathscope_animation_ticks_total",
		Help: "Animation ticks applied.",
	})

	AnimationsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathscope_animations_completed_total",
		Help: "Path reveals that ran to completion.",
	})

	GraphReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathscope_graph_reloads_total",
		Help: "Graph document reloads, labelled by status.",
	}, []string{"status"})

	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pathscope_graph_nodes",
		Help: "Nodes in the currently loaded graph.",
	})
)
