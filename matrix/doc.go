// Package matrix provides the dense cost-matrix storage used by the
// scanline solver and the stereo pipeline.
//
// The matrix package provides:
//
//   - Matrix, a small interface over a two-dimensional float64 array with
//     bounds-checked At/Set that return errors instead of panicking.
//   - Dense, a row-major implementation with an explicit numeric policy
//     (NaN/±Inf rejected on write unless WithNoValidateNaNInf is given).
//   - Centralized validators (nil, empty, square, finite, row agreement).
//   - Deterministic kernels for the DP hot path: a three-way broadcast add
//     and column-wise minimum/argmin with first-occurrence tie-breaking.
//
// Cost matrices in this module are laid out as (label, position) for unary
// costs and (previous label, current label) for pairwise costs.
//
// See example_test.go for usage patterns.
package matrix
