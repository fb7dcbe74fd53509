package scanline

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stereodp/matrix"
)

// Equivalent runs a and b on the same input and reports whether they
// returned identical paths. On mismatch the returned error names the first
// differing position; solver errors are passed through unchanged.
func Equivalent(a, b Solver, unary, pairwise matrix.Matrix) (bool, error) {
	pa, err := a.Solve(unary, pairwise)
	if err != nil {
		return false, fmt.Errorf("%s: %w", a.Name(), err)
	}
	pb, err := b.Solve(unary, pairwise)
	if err != nil {
		return false, fmt.Errorf("%s: %w", b.Name(), err)
	}
	if slices.Equal(pa, pb) {
		return true, nil
	}

	for q := range pa {
		if q >= len(pb) || pa[q] != pb[q] {
			return false, fmt.Errorf("%s and %s diverge at position %d: %v vs %v", a.Name(), b.Name(), q, pa, pb)
		}
	}

	return false, fmt.Errorf("%s and %s return paths of length %d and %d", a.Name(), b.Name(), len(pa), len(pb))
}
