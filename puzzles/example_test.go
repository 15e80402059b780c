package puzzles_test

import (
	"fmt"

	"github.com/katalvlaran/searchgrade/bestfirst"
	"github.com/katalvlaran/searchgrade/puzzles"
)

// ExampleNewTile solves a 2x3 board with A* and the misplaced-tile estimate.
func ExampleNewTile() {
	tp, err := puzzles.NewTile([]string{"ab_", "dec"}, []string{"abc", "de_"}, puzzles.WithLabel("2x3 Tiles"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	goal, err := bestfirst.AStar(tp)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tp.Label(), goal.Solution(), goal.State)
	// Output: 2x3 Tiles [up] abc/de_
}
