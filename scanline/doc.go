// Package scanline computes the minimum-cost disparity assignment along one
// image scanline by dynamic programming.
//
// 🚀 What is scanline DP?
//
//	For a scanline with P positions and D candidate disparities, every
//	(disparity, position) cell has a unary matching cost and every pair of
//	consecutive disparities has a pairwise smoothness cost. The solver finds
//	the sequence of disparities with the lowest total
//
//	  total(path) = Σ_p U[path[p], p] + Σ_{p>0} W[path[p-1], path[p]]
//
//	in a single forward pass (minimum cost + parent per cell) followed by a
//	backward trace from the cheapest terminal cell.
//
// ✨ Key features:
//   - two interchangeable strategies behind one Solver interface:
//     Reference (triple nested loop) and Vectorized (per-position D×D
//     broadcast + column reduction); outputs are bit-identical
//   - deterministic tie-breaking: the lowest-indexed disparity always wins
//   - Exhaustive strategy for verification on tiny inputs
//   - strict validation with sentinel errors (ErrShapeMismatch,
//     ErrEmptyInput, ErrNonFiniteCost); no partial results
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stereodp/scanline"
//
//	unary, _ := matrix.NewDenseFromRows([][]float64{{1, 5, 2}, {4, 1, 3}})
//	pairwise, _ := matrix.NewDenseFromRows([][]float64{{0, 2}, {2, 0}})
//
//	path, err := scanline.Solve(unary, pairwise) // [0 1 1]
//
// Concurrency:
//
//	Solvers are stateless values. A call owns its transient buffers, so
//	concurrent calls on different (or shared read-only) inputs are safe.
//	Independent scanlines can be solved in parallel by the caller.
//
// Performance:
//
//   - Time:   O(D²·P)
//   - Memory: O(D·P) for parents; Reference also keeps the full D×P
//     minimum-cost table, Vectorized keeps two columns plus one D×D step.
package scanline
