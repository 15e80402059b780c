package bestfirst_test

import (
	"fmt"

	"github.com/katalvlaran/searchgrade/bestfirst"
	"github.com/katalvlaran/searchgrade/core"
	"github.com/katalvlaran/searchgrade/internal/fixture"
)

// ExampleAStar runs A* with the straight-line-distance heuristic.
func ExampleAStar() {
	goal, err := bestfirst.AStar(fixture.RomaniaSLD())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(goal.Solution(), goal.PathCost)
	// Output:
	// [Sibiu Rimnicu Pitesti Bucharest] 418
}

// ExampleUniformCost counts how much work uninformed search needs.
func ExampleUniformCost() {
	ip := core.NewInstrumented(fixture.Romania("Arad", "Bucharest"))
	goal, err := bestfirst.UniformCost(ip)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(goal.PathCost, ip.Found)
	// Output:
	// 418 Bucharest
}
