package scanline_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stereodp/matrix"
	"github.com/katalvlaran/stereodp/scanline"
)

// ExampleSolve solves a two-disparity, three-position scanline.
func ExampleSolve() {
	unary, _ := matrix.NewDenseFromRows([][]float64{
		{1, 5, 2}, // disparity 0
		{4, 1, 3}, // disparity 1
	})
	pairwise, _ := matrix.NewDenseFromRows([][]float64{{0, 2}, {2, 0}})

	path, err := scanline.Solve(unary, pairwise)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cost, _ := scanline.PathCost(unary, pairwise, path)
	fmt.Println("path:", path, "cost:", cost)
	// Output: path: [0 1 1] cost: 7
}

// ExampleSolveResult shows the terminal minimum-cost column.
func ExampleSolveResult() {
	unary, _ := matrix.NewDenseFromRows([][]float64{{1, 5, 2}, {4, 1, 3}})
	pairwise, _ := matrix.NewDenseFromRows([][]float64{{0, 2}, {2, 0}})

	res, _ := scanline.SolveResult(unary, pairwise, scanline.WithStrategy(scanline.StrategyReference))
	fmt.Println(res.Strategy, res.Path, res.Cost, res.Terminal)
	// Output: reference [0 1 1] 7 [8 7]
}

// ExampleValidate shows the sentinel reported for a mis-shaped pairwise matrix.
func ExampleValidate() {
	unary, _ := matrix.NewDense(3, 5)
	pairwise, _ := matrix.NewDense(2, 2)

	_, _, err := scanline.Validate(unary, pairwise)
	fmt.Println(errors.Is(err, scanline.ErrShapeMismatch))
	// Output: true
}
