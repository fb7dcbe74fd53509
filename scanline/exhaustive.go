package scanline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stereodp/matrix"
)

// Exhaustive - brute-force enumeration of every disparity path
//
// Description:
//
//	Walks all D^P paths in lexicographic order (position 0 most
//	significant) and keeps the first one with the strictly smallest
//	PathCost. It exists to check the DP strategies on tiny inputs and is
//	never a production choice.
//
//	On ties Exhaustive returns the lexicographically smallest optimal path,
//	which may differ from the DP path; the costs are always equal.
//
// Complexity:
//
//	Time   = O(D^P · P)
//	Memory = O(P + D)
type Exhaustive struct {
	// Limit caps D^P. Zero means DefaultExhaustiveLimit.
	Limit int
}

var _ Solver = Exhaustive{}

// Name implements Solver.
func (Exhaustive) Name() string { return StrategyExhaustive.String() }

// Solve implements Solver.
func (e Exhaustive) Solve(unary, pairwise matrix.Matrix) ([]int, error) {
	res, err := e.solve(unary, pairwise)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

func (e Exhaustive) solve(unary, pairwise matrix.Matrix) (Result, error) {
	d, p, err := Validate(unary, pairwise)
	if err != nil {
		return Result{}, err
	}

	limit := e.Limit
	if limit <= 0 {
		limit = DefaultExhaustiveLimit
	}
	if !pathCountWithin(d, p, limit) {
		return Result{}, fmt.Errorf("%d^%d paths exceed limit %d: %w", d, p, limit, ErrTooLarge)
	}

	var (
		path     = make([]int, p) // odometer, starts at all zeros
		best     = make([]int, p)
		terminal = make([]float64, d)
		bestCost = math.Inf(1)
		cost     float64
		q        int
	)
	for k := range terminal {
		terminal[k] = math.Inf(1)
	}

	for {
		if cost, err = PathCost(unary, pairwise, path); err != nil {
			return Result{}, err
		}
		// an overflowed path counts as +Inf
		if !math.IsNaN(cost) && !math.IsInf(cost, 0) {
			if cost < bestCost {
				bestCost = cost
				copy(best, path)
			}
			if cost < terminal[path[p-1]] {
				terminal[path[p-1]] = cost
			}
		}

		// advance the odometer; last position turns fastest
		for q = p - 1; q >= 0; q-- {
			path[q]++
			if path[q] < d {
				break
			}
			path[q] = 0
		}
		if q < 0 {
			break
		}
	}

	if math.IsInf(bestCost, 1) {
		return Result{}, scanlineErrorf(ErrNonFiniteCost, "accumulated cost", matrix.ErrNaNInf)
	}

	return Result{Path: best, Cost: bestCost, Terminal: terminal, Strategy: StrategyExhaustive}, nil
}

// pathCountWithin reports whether d^p ≤ limit without overflowing.
func pathCountWithin(d, p, limit int) bool {
	n := 1
	for i := 0; i < p; i++ {
		if n > limit/d {
			return false
		}
		n *= d
	}

	return n <= limit
}
