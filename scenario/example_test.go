// SPDX-License-Identifier: MIT
package scenario_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/routeplanner/scenario"
)

// ExampleRunner_RunSelection runs the congested scenario without prompting.
func ExampleRunner_RunSelection() {
	rn, err := scenario.New(scenario.WithOutput(os.Stdout))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := rn.RunSelection("2"); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// [WITH TRAFFIC]
	// Best path: [A B E F]
	// Total time: 34 min
}
