// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// matrixErrorf attaches an operation tag to err, preserving the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Fill sets every element of m to v, honoring the numeric policy.
// Complexity: O(r*c).
func Fill(m *Dense, v float64) error {
	if m == nil {
		return matrixErrorf("Fill", ErrNilMatrix)
	}

	return m.Apply(func(_, _ int, _ float64) float64 { return v })
}

// Transpose returns mᵀ as a new *Dense with m's numeric policy.
// Used to switch between (label, position) and (position, label) layouts.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	out, err := NewDense(d.c, d.r, func(o *Options) { o.validateNaNInf = d.validateNaNInf })
	if err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}
