// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors fed by benchmark runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
)

// Registry holds all optimizer metrics on a private Prometheus registry.
type Registry struct {
	RunsTotal    *prometheus.CounterVec
	RunDuration  *prometheus.HistogramVec
	RouteCost    *prometheus.HistogramVec
	RouteHops    *prometheus.HistogramVec
	NetworkNodes prometheus.Gauge
	NetworkEdges prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every collector registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.RunsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netpath_runs_total",
			Help: "Optimizer runs by algorithm and outcome",
		},
		[]string{"algorithm", "outcome"},
	)
	r.RunDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netpath_run_duration_seconds",
			Help:    "Wall time of one optimizer run",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"algorithm"},
	)
	r.RouteCost = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netpath_route_cost",
			Help:    "Weighted cost of routes found",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"algorithm"},
	)
	r.RouteHops = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netpath_route_hops",
			Help:    "Edges traversed by routes found",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
		[]string{"algorithm"},
	)
	r.NetworkNodes = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "netpath_network_nodes",
		Help: "Nodes in the benchmarked network",
	})
	r.NetworkEdges = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "netpath_network_edges",
		Help: "Edges in the benchmarked network",
	})

	return r
}

// Gatherer returns the underlying Prometheus registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// SetNetwork records the size of the network under test.
func (r *Registry) SetNetwork(nodes, edges int) {
	r.NetworkNodes.Set(float64(nodes))
	r.NetworkEdges.Set(float64(edges))
}

// RecordRun records one optimizer run. Cost and hops are only observed when
// a route was found.
func (r *Registry) RecordRun(algorithm string, found bool, duration time.Duration, cost float64, hops int) {
	r.RunDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	if !found {
		r.RunsTotal.WithLabelValues(algorithm, OutcomeNoPath).Inc()
		return
	}
	r.RunsTotal.WithLabelValues(algorithm, OutcomeFound).Inc()
	r.RouteCost.WithLabelValues(algorithm).Observe(cost)
	r.RouteHops.WithLabelValues(algorithm).Observe(float64(hops))
}

// WriteTextfile writes the current metric values in the Prometheus text
// exposition format, suitable for the node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
