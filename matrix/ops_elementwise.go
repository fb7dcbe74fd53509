// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the broadcast and reduction kernels used by the vectorized DP
//     strategy, so the D×D transition step is one elementwise pass plus one
//     column reduction instead of per-cell At/Set calls.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j over a row-major buffer).
//   - Reductions scan rows in ascending order with strict '<', so ties resolve
//     to the lowest row index (first occurrence), matching a naive scan.
//   - "Into" kernels write caller-owned buffers and allocate nothing.

package matrix

// Operation name constants for unified error wrapping.
const (
	opBroadcastAdd = "BroadcastAddInto"
	opColMinArg    = "ColMinArgInto"
	opMinArg       = "MinArg"
)

// BroadcastAddInto computes dst[i,j] = (col[i] + base[i,j]) + row[j].
//
// Implementation:
//   - Stage 1: validate dst/base presence, equal shapes, and vector lengths.
//   - Stage 2: Dense fast-path over flat buffers; At fallback for other bases.
//
// The addition order is fixed (left to right as written above) so results are
// bit-identical to a scalar loop evaluating the same expression.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with the op tag).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func BroadcastAddInto(dst *Dense, col []float64, base Matrix, row []float64) error {
	if dst == nil {
		return matrixErrorf(opBroadcastAdd, ErrNilMatrix)
	}
	if err := ValidateNotNil(base); err != nil {
		return matrixErrorf(opBroadcastAdd, err)
	}
	r, c := dst.r, dst.c
	if base.Rows() != r || base.Cols() != c {
		return matrixErrorf(opBroadcastAdd, ErrDimensionMismatch)
	}
	if err := ValidateVecLen(col, r); err != nil {
		return matrixErrorf(opBroadcastAdd, err)
	}
	if err := ValidateVecLen(row, c); err != nil {
		return matrixErrorf(opBroadcastAdd, err)
	}

	var i, j, off int
	var ci float64

	// Dense fast-path: one read of base, one write of dst per cell.
	if b, ok := base.(*Dense); ok {
		for i = 0; i < r; i++ {
			off = i * c // row base offset
			ci = col[i] // broadcast value for row i
			for j = 0; j < c; j++ {
				dst.data[off+j] = ci + b.data[off+j] + row[j]
			}
		}
		return nil
	}

	// Generic fallback via At.
	var v float64
	var err error
	for i = 0; i < r; i++ {
		off = i * c
		ci = col[i]
		for j = 0; j < c; j++ {
			if v, err = base.At(i, j); err != nil {
				return matrixErrorf(opBroadcastAdd, err)
			}
			dst.data[off+j] = ci + v + row[j]
		}
	}

	return nil
}

// ColMinArgInto reduces m along its rows: for every column j it writes the
// minimum value into mins[j] and the row index achieving it into args[j].
// Ties resolve to the lowest row index.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when len(mins) or len(args) != Cols().
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ColMinArgInto(m *Dense, mins []float64, args []int) error {
	if m == nil {
		return matrixErrorf(opColMinArg, ErrNilMatrix)
	}
	r, c := m.r, m.c
	if len(mins) != c || len(args) != c {
		return matrixErrorf(opColMinArg, ErrDimensionMismatch)
	}

	// Seed with row 0.
	copy(mins, m.data[:c])
	var i, j, off int
	for j = 0; j < c; j++ {
		args[j] = 0
	}

	// Row-major sweep keeps reads sequential; strict '<' keeps first occurrence.
	var v float64
	for i = 1; i < r; i++ {
		off = i * c
		for j = 0; j < c; j++ {
			v = m.data[off+j]
			if v < mins[j] {
				mins[j] = v
				args[j] = i
			}
		}
	}

	return nil
}

// MinArg returns the index and value of the smallest element of x.
// Ties resolve to the lowest index. Empty input yields ErrInvalidDimensions.
// Complexity: O(n).
func MinArg(x []float64) (int, float64, error) {
	if len(x) == 0 {
		return -1, 0, matrixErrorf(opMinArg, ErrInvalidDimensions)
	}
	best, bestV := 0, x[0]
	for k := 1; k < len(x); k++ {
		if x[k] < bestV {
			best, bestV = k, x[k]
		}
	}

	return best, bestV, nil
}

// ColInto copies column j of m into dst (len(dst) must equal Rows()).
// Complexity: O(r).
func ColInto(m *Dense, j int, dst []float64) error {
	if m == nil {
		return matrixErrorf(ctxCol, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	if len(dst) != m.r {
		return matrixErrorf(ctxCol, ErrDimensionMismatch)
	}
	m.colInto(j, dst)

	return nil
}
