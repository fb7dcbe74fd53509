package scanline

import (
	"fmt"

	"github.com/katalvlaran/stereodp/matrix"
)

// PathCost returns the total additive cost of path:
//
//	U[path[0], 0] + Σ_{p≥1} ( W[path[p-1], path[p]] + U[path[p], p] )
//
// The sum is accumulated left to right, pairwise term before unary term,
// which is the order the DP strategies use; the DP total therefore equals
// PathCost of the returned path exactly.
//
// Errors:
//   - ErrEmptyInput, ErrShapeMismatch as in Validate (finiteness is not checked).
//   - ErrInvalidPath when len(path) != P or any entry is outside [0, D).
//
// Complexity: O(P).
func PathCost(unary, pairwise matrix.Matrix, path []int) (float64, error) {
	if err := matrix.ValidateNotNil(unary); err != nil {
		return 0, scanlineErrorf(ErrEmptyInput, "unary", err)
	}
	if err := matrix.ValidateNotNil(pairwise); err != nil {
		return 0, scanlineErrorf(ErrEmptyInput, "pairwise", err)
	}
	if err := matrix.ValidateNonEmpty(unary); err != nil {
		return 0, scanlineErrorf(ErrEmptyInput, "unary", err)
	}
	if err := matrix.ValidateSquare(pairwise); err != nil {
		return 0, scanlineErrorf(ErrShapeMismatch, "pairwise", err)
	}
	if err := matrix.ValidateRowsMatch(unary, pairwise); err != nil {
		return 0, scanlineErrorf(ErrShapeMismatch, "pairwise", err)
	}

	d, p := unary.Rows(), unary.Cols()
	if len(path) != p {
		return 0, fmt.Errorf("length %d, want %d: %w", len(path), p, ErrInvalidPath)
	}
	for q, v := range path {
		if v < 0 || v >= d {
			return 0, fmt.Errorf("path[%d]=%d outside [0,%d): %w", q, v, d, ErrInvalidPath)
		}
	}

	s, err := unary.At(path[0], 0)
	if err != nil {
		return 0, err
	}
	var w, u float64
	for q := 1; q < p; q++ {
		if w, err = pairwise.At(path[q-1], path[q]); err != nil {
			return 0, err
		}
		if u, err = unary.At(path[q], q); err != nil {
			return 0, err
		}
		s += w
		s += u
	}

	return s, nil
}
