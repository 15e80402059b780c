package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/searchgrade/bfs"
	"github.com/katalvlaran/searchgrade/internal/fixture"
)

// ExampleBreadthFirst finds the fewest-hop route across the Romania map.
// Three hops via Fagaras beat the cheaper four-hop route via Rimnicu.
func ExampleBreadthFirst() {
	goal, err := bfs.BreadthFirst(fixture.Romania("Arad", "Bucharest"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var route []string
	for _, n := range goal.Path() {
		route = append(route, n.State.(string))
	}
	fmt.Println(strings.Join(route, " → "))
	fmt.Println("cost:", goal.PathCost)
	// Output:
	// Arad → Sibiu → Fagaras → Bucharest
	// cost: 450
}
