package astar_test

import (
	"fmt"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/builder"
)

// ExampleSearch finds the fastest trip across the built-in network.
func ExampleSearch() {
	g, err := builder.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := astar.Search(g, "A", "F")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Best path:", res.Path)
	fmt.Printf("Total time: %g min\n", res.Cost)

	// Output:
	// Best path: [A B E F]
	// Total time: 34 min
}
