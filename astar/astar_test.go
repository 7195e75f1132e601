package astar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/builder"
	"github.com/katalvlaran/routeplanner/catalog"
	"github.com/katalvlaran/routeplanner/core"
	"github.com/katalvlaran/routeplanner/dfs"
)

// buildScenario materializes one of the built-in scenarios.
func buildScenario(t *testing.T, key string) *core.Graph {
	t.Helper()
	s, ok := catalog.Default().Scenario(key)
	require.True(t, ok)
	tbl, err := s.Table()
	require.NoError(t, err)
	g, err := builder.Build(builder.WithTraffic(tbl))
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	g := buildScenario(t, "1")

	_, err := astar.Search(nil, "A", "F")
	require.ErrorIs(t, err, astar.ErrNilGraph)

	_, err = astar.Search(g, "", "F")
	require.ErrorIs(t, err, astar.ErrEmptyEndpoint)
	_, err = astar.Search(g, "A", "")
	require.ErrorIs(t, err, astar.ErrEmptyEndpoint)

	_, err = astar.Search(g, "Z", "F")
	require.ErrorIs(t, err, astar.ErrUnknownLocation)
	_, err = astar.Search(g, "A", "Z")
	require.ErrorIs(t, err, astar.ErrUnknownLocation)
}

func TestSearch_NoPath(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", orb.Point{0, 0}))
	require.NoError(t, g.AddVertex("B", orb.Point{1, 0}))
	require.NoError(t, g.AddVertex("C", orb.Point{5, 5}))
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)

	res, err := astar.Search(g, "A", "C")
	require.ErrorIs(t, err, astar.ErrNoPathFound)
	require.Nil(t, res)
}

func TestSearch_SameEndpoint(t *testing.T) {
	res, err := astar.Search(buildScenario(t, "1"), "C", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"C"}, res.Path)
	require.Zero(t, res.Cost)
	require.Equal(t, 1, res.Expanded)
}

func TestWithHeuristicNilPanics(t *testing.T) {
	require.Panics(t, func() { astar.WithHeuristic(nil) })
}

// ------------------------------------------------------------------------
// 2. Fixed network regressions
// ------------------------------------------------------------------------

func TestSearch_NoTraffic(t *testing.T) {
	res, err := astar.Search(buildScenario(t, "1"), "A", "F")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "E", "F"}, res.Path)
	require.Equal(t, 34.0, res.Cost)
}

func TestSearch_WithTrafficIndependentBuilds(t *testing.T) {
	first, err := astar.Search(buildScenario(t, "2"), "A", "F")
	require.NoError(t, err)
	second, err := astar.Search(buildScenario(t, "2"), "A", "F")
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B", "E", "F"}, first.Path)
	require.Equal(t, 34.0, first.Cost)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("traffic scenario not reproducible (-first +second):\n%s", diff)
	}
}

func TestSearch_MatchesBruteForce(t *testing.T) {
	for _, key := range []string{"1", "2"} {
		g := buildScenario(t, key)
		ids := g.Vertices()
		for _, from := range ids {
			for _, to := range ids {
				res, err := astar.Search(g, from, to)
				require.NoError(t, err)

				paths, err := dfs.SimplePaths(g, from, to)
				require.NoError(t, err)
				best, ok := dfs.Cheapest(paths)
				require.True(t, ok)

				assert.Equal(t, best.Cost, res.Cost, "scenario %s %s->%s", key, from, to)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 3. Properties over all pairs
// ------------------------------------------------------------------------

func TestSearch_EndpointsAndCostConsistency(t *testing.T) {
	for _, key := range []string{"1", "2"} {
		g := buildScenario(t, key)
		ids := g.Vertices()
		for _, from := range ids {
			for _, to := range ids {
				res, err := astar.Search(g, from, to)
				require.NoError(t, err)
				require.Equal(t, from, res.Path[0])
				require.Equal(t, to, res.Path[len(res.Path)-1])

				cost, err := astar.PathCost(g, res.Path)
				require.NoError(t, err)
				require.Equal(t, res.Cost, cost, "%s->%s via %v", from, to, res.Path)
			}
		}
	}
}

func TestSearch_TrafficNeverHelps(t *testing.T) {
	free := buildScenario(t, "1")
	jammed := buildScenario(t, "2")
	for _, from := range free.Vertices() {
		for _, to := range free.Vertices() {
			a, err := astar.Search(free, from, to)
			require.NoError(t, err)
			b, err := astar.Search(jammed, from, to)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, b.Cost, a.Cost, "%s->%s", from, to)
		}
	}
}

func TestSearch_ZeroHeuristicAgrees(t *testing.T) {
	g := buildScenario(t, "2")
	informed, err := astar.Search(g, "A", "F")
	require.NoError(t, err)
	uniform, err := astar.Search(g, "A", "F", astar.WithZeroHeuristic())
	require.NoError(t, err)

	require.Equal(t, uniform.Cost, informed.Cost)
	require.LessOrEqual(t, informed.Expanded, uniform.Expanded)
}

// ------------------------------------------------------------------------
// 4. Tie-breaking and heuristic plumbing
// ------------------------------------------------------------------------

// square builds A-B-D and A-C-D with equal times; order decides which road
// is inserted first.
func square(t *testing.T, viaCFirst bool) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id, orb.Point{}))
	}
	roads := [][2]string{{"A", "B"}, {"B", "D"}, {"A", "C"}, {"C", "D"}}
	if viaCFirst {
		roads = [][2]string{{"A", "C"}, {"C", "D"}, {"A", "B"}, {"B", "D"}}
	}
	for _, r := range roads {
		_, err := g.AddEdge(r[0], r[1], 1)
		require.NoError(t, err)
	}

	return g
}

func TestSearch_TiesFollowInsertionOrder(t *testing.T) {
	res, err := astar.Search(square(t, false), "A", "D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, res.Path)

	res, err = astar.Search(square(t, true), "A", "D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "D"}, res.Path)
}

func TestSearch_CustomHeuristicConsulted(t *testing.T) {
	g := buildScenario(t, "1")
	calls := 0
	h := func(from, to string) float64 {
		calls++
		require.Equal(t, "F", to)
		return 0
	}
	res, err := astar.Search(g, "A", "F", astar.WithHeuristic(h))
	require.NoError(t, err)
	require.Equal(t, 34.0, res.Cost)
	require.Positive(t, calls)
}

func TestDistanceAndEuclidean(t *testing.T) {
	g := buildScenario(t, "1")

	d, err := astar.Distance(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, 8.0, d)

	_, err = astar.Distance(g, "A", "Z")
	require.ErrorIs(t, err, astar.ErrUnknownLocation)
	_, err = astar.Distance(nil, "A", "B")
	require.ErrorIs(t, err, astar.ErrNilGraph)

	h := astar.Euclidean(g)
	require.Equal(t, 16.0, h("A", "F"))
	require.Panics(t, func() { h("Z", "F") })
}

func TestEuclideanIsAdmissibleOnNetwork(t *testing.T) {
	g := buildScenario(t, "1")
	h := astar.Euclidean(g)
	for _, e := range g.Edges() {
		assert.LessOrEqual(t, h(e.From, e.To), e.Weight, "road %s-%s", e.From, e.To)
	}
}

func TestPathCost(t *testing.T) {
	g := buildScenario(t, "2")

	cost, err := astar.PathCost(g, []string{"A", "B", "C"})
	require.NoError(t, err)
	require.Equal(t, 27.0, cost)

	cost, err = astar.PathCost(g, []string{"A"})
	require.NoError(t, err)
	require.Zero(t, cost)

	_, err = astar.PathCost(g, nil)
	require.ErrorIs(t, err, astar.ErrBrokenPath)
	_, err = astar.PathCost(g, []string{"Z"})
	require.ErrorIs(t, err, astar.ErrBrokenPath)
	_, err = astar.PathCost(g, []string{"A", "F"})
	require.ErrorIs(t, err, astar.ErrBrokenPath)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = astar.PathCost(nil, []string{"A"})
	require.ErrorIs(t, err, astar.ErrNilGraph)
}
