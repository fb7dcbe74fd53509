package stereo

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/stereodp/matrix"
)

// Pairwise smoothness models accepted by PairwiseFromModel.
const (
	ModelPotts           = "potts"
	ModelLinear          = "linear"
	ModelTruncatedLinear = "truncated-linear"
	ModelQuadratic       = "quadratic"
)

// Models lists the accepted model names.
func Models() []string {
	return []string{ModelPotts, ModelLinear, ModelTruncatedLinear, ModelQuadratic}
}

// Potts charges w for any change of disparity: W[i,j] = w·[i≠j].
func Potts(d int, w float64) (*matrix.Dense, error) {
	return build("Potts", d, w, func(i, j int) float64 {
		if i == j {
			return 0
		}
		return w
	})
}

// Linear charges w per disparity step: W[i,j] = w·|i-j|.
func Linear(d int, w float64) (*matrix.Dense, error) {
	return build("Linear", d, w, func(i, j int) float64 {
		return w * float64(absInt(i-j))
	})
}

// TruncatedLinear caps Linear at t steps: W[i,j] = w·min(|i-j|, t).
func TruncatedLinear(d int, w, t float64) (*matrix.Dense, error) {
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, stereoErrorf("TruncatedLinear", ErrInvalidParameter)
	}

	return build("TruncatedLinear", d, w, func(i, j int) float64 {
		return w * math.Min(float64(absInt(i-j)), t)
	})
}

// Quadratic charges W[i,j] = w·(i-j)².
func Quadratic(d int, w float64) (*matrix.Dense, error) {
	return build("Quadratic", d, w, func(i, j int) float64 {
		k := float64(i - j)
		return w * k * k
	})
}

// PairwiseFromModel dispatches on a model name; t is used only by
// truncated-linear.
func PairwiseFromModel(model string, d int, w, t float64) (*matrix.Dense, error) {
	switch strings.ToLower(strings.TrimSpace(model)) {
	case ModelPotts:
		return Potts(d, w)
	case ModelLinear:
		return Linear(d, w)
	case ModelTruncatedLinear, "truncated":
		return TruncatedLinear(d, w, t)
	case ModelQuadratic:
		return Quadratic(d, w)
	default:
		return nil, fmt.Errorf("%q: %w", model, ErrUnknownModel)
	}
}

func build(tag string, d int, w float64, f func(i, j int) float64) (*matrix.Dense, error) {
	if d < 1 || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return nil, stereoErrorf(tag, ErrInvalidParameter)
	}

	out, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, stereoErrorf(tag, err)
	}
	if err = out.Apply(func(i, j int, _ float64) float64 { return f(i, j) }); err != nil {
		return nil, stereoErrorf(tag, err)
	}

	return out, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
