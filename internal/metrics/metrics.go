// Package metrics records route search outcomes in Prometheus form and
// exports them as a textfile for node_exporter style collection.
package metrics

import (
	"bytes"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound   = "found"
	OutcomeNoRoute = "no_route"
	OutcomeError   = "error"
)

// Collector captures route search metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	cost     *prometheus.GaugeVec
}

// NewCollector initializes a new metrics registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	collector := &Collector{
		registry: registry,
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "route_searches_total", Help: "Total number of route searches"},
			[]string{"scenario", "outcome"},
		),
		expanded: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "route_search_expanded_nodes",
				Help:    "Locations expanded per successful search",
				Buckets: prometheus.LinearBuckets(1, 2, 8),
			},
		),
		cost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "route_cost_minutes", Help: "Total time of the last route found"},
			[]string{"scenario"},
		),
	}

	registry.MustRegister(collector.searches, collector.expanded, collector.cost)
	return collector
}

// ObserveSearch records a successful search.
func (c *Collector) ObserveSearch(scenario string, expanded int, cost float64) {
	if c == nil {
		return
	}
	c.searches.WithLabelValues(scenario, OutcomeFound).Inc()
	c.expanded.Observe(float64(expanded))
	c.cost.WithLabelValues(scenario).Set(cost)
}

// ObserveFailure records a search that produced no route.
func (c *Collector) ObserveFailure(scenario, outcome string) {
	if c == nil {
		return
	}
	c.searches.WithLabelValues(scenario, outcome).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Write writes all metrics to a Prometheus text file.
func (c *Collector) Write(path string) error {
	metricFamilies, err := c.registry.Gather()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range metricFamilies {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
