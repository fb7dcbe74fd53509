package scanline

import (
	"math"

	"github.com/katalvlaran/stereodp/matrix"
)

// Reference - scanline DP, nested-loop strategy
//
// Description:
//
//	The correctness baseline. Every (position, disparity, previous
//	disparity) triple is visited explicitly and all matrix access goes
//	through the bounds-checked Matrix interface, so any Matrix
//	implementation is accepted without conversion.
//
// Algorithm Outline:
//  1. Let D = unary.Rows(), P = unary.Cols(). Allocate MinimumCost (D×P)
//     and Parent (D×P).
//  2. Initialize MinimumCost[d][0] = U[d][0].
//  3. For p = 1..P-1, for d = 0..D-1:
//     for d' = 0..D-1:
//     c = MinimumCost[d'][p-1] + W[d'][d] + U[d][p]
//     keep the smallest c (strict '<', so the first d' wins ties);
//     an overflowed c is +Inf and simply loses
//     MinimumCost[d][p] = best c, Parent[d][p] = best d'
//  4. BestPath[P-1] = argmin_d MinimumCost[d][P-1] (lowest index on ties),
//     then BestPath[p-1] = Parent[BestPath[p]][p].
//
// Complexity:
//
//	Time   = O(D²·P)
//	Memory = O(D·P)
type Reference struct{}

var _ Solver = Reference{}

// Name implements Solver.
func (Reference) Name() string { return StrategyReference.String() }

func (Reference) strategy() Strategy { return StrategyReference }

// Solve implements Solver.
func (r Reference) Solve(unary, pairwise matrix.Matrix) ([]int, error) {
	res, err := solveWith(r, unary, pairwise)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// forward fills MinimumCost and Parent and returns the terminal column and
// the position-major parent table (parents[p*D + d]).
func (Reference) forward(unary, pairwise matrix.Matrix, d, p int) ([]float64, []int, error) {
	minCost, err := matrix.NewDense(d, p, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, scanlineErrorf(ErrEmptyInput, "minimum cost", err)
	}
	parents := make([]int, d*p)

	var (
		pos, cur, prev, bestPrev int
		u, w, m, cand, best      float64
	)

	// Stage 1: first column is the unary cost alone.
	for cur = 0; cur < d; cur++ {
		if u, err = unary.At(cur, 0); err != nil {
			return nil, nil, err
		}
		if err = minCost.Set(cur, 0, u); err != nil {
			return nil, nil, err
		}
	}

	// Stage 2: left-to-right relaxation.
	for pos = 1; pos < p; pos++ {
		for cur = 0; cur < d; cur++ {
			if u, err = unary.At(cur, pos); err != nil {
				return nil, nil, err
			}
			for prev = 0; prev < d; prev++ {
				if m, err = minCost.At(prev, pos-1); err != nil {
					return nil, nil, err
				}
				if w, err = pairwise.At(prev, cur); err != nil {
					return nil, nil, err
				}
				cand = m + w + u
				if prev == 0 || cand < best {
					best, bestPrev = cand, prev
				}
			}
			if math.IsNaN(best) {
				return nil, nil, scanlineErrorf(ErrNonFiniteCost, "accumulated cost", matrix.ErrNaNInf)
			}
			if err = minCost.Set(cur, pos, best); err != nil {
				return nil, nil, err
			}
			parents[pos*d+cur] = bestPrev
		}
	}

	terminal, err := minCost.Col(p - 1)
	if err != nil {
		return nil, nil, err
	}

	return terminal, parents, nil
}
