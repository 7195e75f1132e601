package core_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/routeplanner/core"
)

// ExampleGraph demonstrates building a tiny road network and reading an edge
// back in the opposite order.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddVertex("A", orb.Point{0, 0})
	_ = g.AddVertex("B", orb.Point{4, 1})
	_ = g.AddVertex("C", orb.Point{8, 0})

	_, _ = g.AddEdge("A", "B", 10)
	_, _ = g.AddEdge("B", "C", 9, core.WithPenalty(8))

	e, _ := g.EdgeBetween("C", "B")
	fmt.Println("Vertices:", g.Vertices())
	fmt.Printf("B-C base=%g penalty=%g time=%g\n", e.Base, e.Penalty, e.Weight)
	fmt.Println("A-C road?", g.HasEdge("A", "C"))

	// Output:
	// Vertices: [A B C]
	// B-C base=9 penalty=8 time=17
	// A-C road? false
}
