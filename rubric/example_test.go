package rubric_test

import (
	"fmt"

	"github.com/katalvlaran/searchgrade/rubric"
)

// ExampleCostBucket shows which rubric bucket a solution cost lands in.
func ExampleCostBucket() {
	for _, cost := range []float64{2, 5, 20, 100} {
		fmt.Println(cost, rubric.CostBucket(cost))
	}
	// Output:
	// 2 2actions
	// 5 4-7actions
	// 20 16-31actions
	// 100 64+actions
}
