package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.ObserveSearch("NO TRAFFIC", 7, 34)
	c.ObserveSearch("NO TRAFFIC", 5, 34)
	c.ObserveFailure("WITH TRAFFIC", OutcomeNoRoute)

	require.Equal(t, 2.0, testutil.ToFloat64(c.searches.WithLabelValues("NO TRAFFIC", OutcomeFound)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.searches.WithLabelValues("WITH TRAFFIC", OutcomeNoRoute)))
	require.Equal(t, 34.0, testutil.ToFloat64(c.cost.WithLabelValues("NO TRAFFIC")))
	require.Equal(t, 2, testutil.CollectAndCount(c.searches))
	require.Equal(t, 1, testutil.CollectAndCount(c.cost))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	require.NotPanics(t, func() {
		c.ObserveSearch("x", 1, 1)
		c.ObserveFailure("x", OutcomeError)
	})
}

func TestWrite(t *testing.T) {
	c := NewCollector()
	c.ObserveSearch("WITH TRAFFIC", 6, 34)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, c.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `route_searches_total{outcome="found",scenario="WITH TRAFFIC"} 1`)
	require.Contains(t, string(data), "route_search_expanded_nodes_count 1")
	require.Contains(t, string(data), `route_cost_minutes{scenario="WITH TRAFFIC"} 34`)
}
