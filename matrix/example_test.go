package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/stereodp/matrix"
)

// ExampleBroadcastAddInto shows one DP transition step: previous minimum
// costs broadcast down the rows, the pairwise matrix, and the current
// unary column broadcast across the columns, then a column reduction.
func ExampleBroadcastAddInto() {
	pairwise, _ := matrix.NewDenseFromRows([][]float64{{0, 2}, {2, 0}})
	step, _ := matrix.NewDense(2, 2)

	prev := []float64{1, 4}  // minimum cost per previous disparity
	unary := []float64{5, 1} // unary cost per current disparity
	_ = matrix.BroadcastAddInto(step, prev, pairwise, unary)

	mins := make([]float64, 2)
	args := make([]int, 2)
	_ = matrix.ColMinArgInto(step, mins, args)

	fmt.Print(step)
	fmt.Println("mins:", mins, "parents:", args)
	// Output:
	// [6, 4]
	// [11, 5]
	// mins: [6 4] parents: [0 0]
}
