package stereo

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/stereodp/matrix"
)

// Metric is the per-pixel dissimilarity between a left and a right intensity.
type Metric int

const (
	// AbsDiff is |l - r| (sum of absolute differences once windowed).
	AbsDiff Metric = iota

	// SquaredDiff is (l - r)² (sum of squared differences once windowed).
	SquaredDiff
)

// String returns the canonical config name.
func (m Metric) String() string {
	switch m {
	case AbsDiff:
		return "abs"
	case SquaredDiff:
		return "squared"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseMetric accepts abs/sad and squared/ssd, case-insensitively.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "abs", "sad", "absdiff":
		return AbsDiff, nil
	case "squared", "ssd", "squareddiff":
		return SquaredDiff, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownMetric)
	}
}

// DefaultOcclusionCost is charged for taps that fall left of the right image.
const DefaultOcclusionCost = 20.0

// UnaryOptions controls UnaryCosts.
type UnaryOptions struct {
	// Metric selects the per-pixel dissimilarity.
	Metric Metric

	// Truncate caps each per-pixel cost; 0 disables truncation.
	Truncate float64

	// Window is the half-width of the box aggregation along the scanline;
	// 0 uses the single pixel.
	Window int

	// OcclusionCost is the per-pixel cost when x-d < 0.
	OcclusionCost float64
}

// DefaultUnaryOptions returns AbsDiff, no truncation, no window and
// DefaultOcclusionCost.
func DefaultUnaryOptions() UnaryOptions {
	return UnaryOptions{Metric: AbsDiff, OcclusionCost: DefaultOcclusionCost}
}

func (o UnaryOptions) validate() error {
	switch {
	case o.Metric != AbsDiff && o.Metric != SquaredDiff:
		return ErrUnknownMetric
	case o.Truncate < 0 || math.IsNaN(o.Truncate) || math.IsInf(o.Truncate, 0):
		return ErrInvalidParameter
	case o.Window < 0:
		return ErrInvalidParameter
	case o.OcclusionCost < 0 || math.IsNaN(o.OcclusionCost) || math.IsInf(o.OcclusionCost, 0):
		return ErrInvalidParameter
	}

	return nil
}

// UnaryCosts builds the (maxDisparity+1)×len(left) unary matrix for one
// scanline pair. Row d, column x holds the (windowed) cost of matching
// left[x] with right[x-d].
//
// Errors:
//   - ErrSizeMismatch if len(left) != len(right).
//   - ErrEmptyImage if the scanline is empty.
//   - ErrInvalidParameter if maxDisparity < 0 or an option is out of domain.
//   - ErrUnknownMetric for an unknown Metric value.
//
// Complexity: O(D·P) regardless of Window (running box sum).
func UnaryCosts(left, right []float64, maxDisparity int, opts UnaryOptions) (*matrix.Dense, error) {
	// Stage 1: validate.
	if len(left) != len(right) {
		return nil, stereoErrorf("UnaryCosts", ErrSizeMismatch)
	}
	if len(left) == 0 {
		return nil, stereoErrorf("UnaryCosts", ErrEmptyImage)
	}
	if maxDisparity < 0 {
		return nil, stereoErrorf("UnaryCosts", ErrInvalidParameter)
	}
	if err := opts.validate(); err != nil {
		return nil, stereoErrorf("UnaryCosts", err)
	}

	d, p := maxDisparity+1, len(left)
	out, err := matrix.NewDense(d, p)
	if err != nil {
		return nil, stereoErrorf("UnaryCosts", err)
	}

	// Stage 2: per-pixel cost, one disparity row at a time.
	raw := make([]float64, p)
	var disp, x int
	for disp = 0; disp < d; disp++ {
		for x = 0; x < p; x++ {
			raw[x] = opts.pixelCost(left, right, x, disp)
		}
		if opts.Window > 0 {
			raw = boxSum(raw, opts.Window)
		}
		for x = 0; x < p; x++ {
			if err = out.Set(disp, x, raw[x]); err != nil {
				return nil, stereoErrorf("UnaryCosts", err)
			}
		}
	}

	return out, nil
}

func (o UnaryOptions) pixelCost(left, right []float64, x, d int) float64 {
	if x-d < 0 {
		return o.OcclusionCost
	}
	diff := left[x] - right[x-d]

	var c float64
	if o.Metric == SquaredDiff {
		c = diff * diff
	} else {
		c = math.Abs(diff)
	}
	if o.Truncate > 0 && c > o.Truncate {
		c = o.Truncate
	}

	return c
}

// boxSum returns out[x] = Σ in[x-r .. x+r], clipped to the slice.
func boxSum(in []float64, r int) []float64 {
	n := len(in)
	prefix := make([]float64, n+1)
	for i, v := range in {
		prefix[i+1] = prefix[i] + v
	}

	out := make([]float64, n)
	for x := range out {
		lo, hi := max(x-r, 0), min(x+r+1, n)
		out[x] = prefix[hi] - prefix[lo]
	}

	return out
}
