package stereo

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch indicates left and right images (or scanlines) differ in size.
	ErrSizeMismatch = errors.New("stereo: left and right inputs differ in size")

	// ErrInvalidParameter indicates a non-positive disparity range, a
	// negative weight or truncation, or any other out-of-domain argument.
	ErrInvalidParameter = errors.New("stereo: invalid parameter")

	// ErrUnknownMetric indicates an unrecognized unary metric name.
	ErrUnknownMetric = errors.New("stereo: unknown matching metric")

	// ErrUnknownModel indicates an unrecognized pairwise model name.
	ErrUnknownModel = errors.New("stereo: unknown smoothness model")

	// ErrOutOfBounds indicates a pixel coordinate outside the disparity map.
	ErrOutOfBounds = errors.New("stereo: coordinate out of bounds")

	// ErrEmptyImage indicates a nil image or one with zero width or height.
	ErrEmptyImage = errors.New("stereo: empty image")
)

// stereoErrorf prefixes err with a short operation tag.
func stereoErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
