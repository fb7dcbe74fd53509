package scanline

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates the pairwise matrix is not square or its
	// order differs from the number of disparities (unary rows).
	ErrShapeMismatch = errors.New("scanline: cost matrix shapes do not match")

	// ErrEmptyInput indicates a nil cost matrix or zero disparities/positions.
	ErrEmptyInput = errors.New("scanline: cost matrices must be non-empty")

	// ErrNonFiniteCost indicates a NaN or ±Inf entry in either cost matrix.
	ErrNonFiniteCost = errors.New("scanline: cost matrices must contain only finite values")

	// ErrTooLarge indicates the Exhaustive strategy was asked to enumerate
	// more paths than its configured limit.
	ErrTooLarge = errors.New("scanline: input too large for exhaustive search")

	// ErrUnknownStrategy indicates an unrecognized Strategy value or name.
	ErrUnknownStrategy = errors.New("scanline: unknown strategy")

	// ErrInvalidPath indicates a path of the wrong length or with a
	// disparity outside [0, D) was passed to PathCost.
	ErrInvalidPath = errors.New("scanline: invalid disparity path")
)

// scanlineErrorf tags a scanline sentinel with the offending operand and,
// when present, the lower-level cause. Both stay matchable with errors.Is.
func scanlineErrorf(sentinel error, operand string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", operand, sentinel)
	}

	return fmt.Errorf("%s: %w: %w", operand, sentinel, cause)
}
