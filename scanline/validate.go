// Package scanline - validation shared by every strategy.
//
// This file contains the single guard every Solve runs before touching any
// data:
//  1. Presence and non-empty shape of both matrices.
//  2. Pairwise is square with order equal to the unary row count.
//  3. Every entry of both matrices is finite.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(D·P + D²) worst case; no allocations on the *Dense path.
package scanline

import "github.com/katalvlaran/stereodp/matrix"

// Validate checks unary and pairwise against the solver contract and returns
// the number of disparities d and positions p.
//
// Errors (first failing stage wins):
//   - ErrEmptyInput    - nil matrix or a zero dimension.
//   - ErrShapeMismatch - pairwise not square, or pairwise order != d.
//   - ErrNonFiniteCost - NaN/±Inf in unary, then pairwise.
//
// Complexity: O(d·p + d²).
func Validate(unary, pairwise matrix.Matrix) (d, p int, err error) {
	// Stage 1: presence and shape.
	if e := matrix.ValidateNotNil(unary); e != nil {
		return 0, 0, scanlineErrorf(ErrEmptyInput, "unary", e)
	}
	if e := matrix.ValidateNotNil(pairwise); e != nil {
		return 0, 0, scanlineErrorf(ErrEmptyInput, "pairwise", e)
	}
	if e := matrix.ValidateNonEmpty(unary); e != nil {
		return 0, 0, scanlineErrorf(ErrEmptyInput, "unary", e)
	}

	// Stage 2: pairwise must be d×d.
	if e := matrix.ValidateSquare(pairwise); e != nil {
		return 0, 0, scanlineErrorf(ErrShapeMismatch, "pairwise", e)
	}
	if e := matrix.ValidateRowsMatch(unary, pairwise); e != nil {
		return 0, 0, scanlineErrorf(ErrShapeMismatch, "pairwise", e)
	}

	// Stage 3: numeric policy.
	if e := matrix.ValidateFinite(unary); e != nil {
		return 0, 0, scanlineErrorf(ErrNonFiniteCost, "unary", e)
	}
	if e := matrix.ValidateFinite(pairwise); e != nil {
		return 0, 0, scanlineErrorf(ErrNonFiniteCost, "pairwise", e)
	}

	return unary.Rows(), unary.Cols(), nil
}
