package scanline

import (
	"math"

	"github.com/katalvlaran/stereodp/matrix"
)

// Vectorized - scanline DP, per-position matrix strategy
//
// Description:
//
//	Same recurrence as Reference, but the two inner loops over (d, d') are
//	replaced at every position by one D×D elementwise pass and one column
//	reduction over the previous-disparity axis:
//
//	  T[d', d] = prev[d'] + W[d', d] + U[d, p]      (matrix.BroadcastAddInto)
//	  cur[d], parent[d] = min, argmin over d' of T  (matrix.ColMinArgInto)
//
//	The reduction scans d' in ascending order with strict '<', and the
//	additions are evaluated in the same order as Reference, so paths are
//	bit-identical, not merely cost-equal.
//
// Memory Modes:
//
//	Only two minimum-cost columns are kept (prev, cur) plus one D×D step
//	buffer reused for every position; the parent table stays O(D·P).
//
// Complexity:
//
//	Time   = O(D²·P)
//	Memory = O(D² + D·P)
type Vectorized struct{}

var _ Solver = Vectorized{}

// Name implements Solver.
func (Vectorized) Name() string { return StrategyVectorized.String() }

func (Vectorized) strategy() Strategy { return StrategyVectorized }

// Solve implements Solver.
func (v Vectorized) Solve(unary, pairwise matrix.Matrix) ([]int, error) {
	res, err := solveWith(v, unary, pairwise)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// forward runs the rolling-column forward pass and returns the terminal
// column and the position-major parent table (parents[p*D + d]).
func (Vectorized) forward(unary, pairwise matrix.Matrix, d, p int) ([]float64, []int, error) {
	// Stage 1: bring both operands onto the flat-buffer fast path.
	u, err := matrix.AsDense(unary)
	if err != nil {
		return nil, nil, err
	}
	w, err := matrix.AsDense(pairwise)
	if err != nil {
		return nil, nil, err
	}
	step, err := matrix.NewDense(d, d, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, scanlineErrorf(ErrEmptyInput, "step", err)
	}

	var (
		prev    = make([]float64, d)
		cur     = make([]float64, d)
		ucol    = make([]float64, d)
		parents = make([]int, d*p)
		pos, k  int
	)

	// Stage 2: first column is the unary cost alone.
	if err = matrix.ColInto(u, 0, prev); err != nil {
		return nil, nil, err
	}

	// Stage 3: one broadcast + one reduction per position.
	for pos = 1; pos < p; pos++ {
		if err = matrix.ColInto(u, pos, ucol); err != nil {
			return nil, nil, err
		}
		if err = matrix.BroadcastAddInto(step, prev, w, ucol); err != nil {
			return nil, nil, err
		}
		if err = matrix.ColMinArgInto(step, cur, parents[pos*d:(pos+1)*d]); err != nil {
			return nil, nil, err
		}
		for k = 0; k < d; k++ {
			if math.IsNaN(cur[k]) {
				return nil, nil, scanlineErrorf(ErrNonFiniteCost, "accumulated cost", matrix.ErrNaNInf)
			}
		}
		prev, cur = cur, prev // roll columns
	}

	return prev, parents, nil
}
