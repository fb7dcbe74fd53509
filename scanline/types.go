// Package scanline defines the Solver contract, strategies and options.
package scanline

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stereodp/matrix"
)

// Solver computes the minimum-cost disparity path for one scanline.
//
// Contract:
//   - unary is D×P (rows = disparities, columns = positions), D, P ≥ 1.
//   - pairwise is D×D, pairwise[prev, cur].
//   - All entries finite; negatives and ties are legal.
//   - The returned path has length P with values in [0, D).
//   - Implementations are pure: inputs are never mutated.
type Solver interface {
	// Solve returns the globally cost-minimal path (lowest index on ties).
	Solve(unary, pairwise matrix.Matrix) ([]int, error)

	// Name returns the strategy name used in logs and metrics labels.
	Name() string
}

// Strategy selects a Solver implementation.
//
//   - Reference  - triple nested loop over positions, disparities and
//     previous disparities; the correctness baseline.
//   - Vectorized - per position, one D×D broadcast add followed by a
//     column-wise min/argmin; bit-identical to Reference.
//   - Exhaustive - enumerates all D^P paths; verification only.
type Strategy int

const (
	// StrategyVectorized is the default strategy.
	StrategyVectorized Strategy = iota

	// StrategyReference is the straightforward nested-loop strategy.
	StrategyReference

	// StrategyExhaustive is brute-force enumeration for tiny inputs.
	StrategyExhaustive
)

// String returns the canonical lowercase name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyVectorized:
		return "vectorized"
	case StrategyReference:
		return "reference"
	case StrategyExhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a case-insensitive name onto a Strategy.
// Returns ErrUnknownStrategy for anything else.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "vectorized", "vec":
		return StrategyVectorized, nil
	case "reference", "ref":
		return StrategyReference, nil
	case "exhaustive", "brute-force":
		return StrategyExhaustive, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy { return []Strategy{StrategyVectorized, StrategyReference, StrategyExhaustive} }

// Result is the outcome of SolveResult.
type Result struct {
	// Path is the disparity per position; len(Path) == P.
	Path []int

	// Cost is the total additive cost of Path.
	Cost float64

	// Terminal is the minimum-cost column at the last position:
	// Terminal[d] is the cheapest total of any path ending at disparity d.
	Terminal []float64

	// Strategy is the strategy that produced the result.
	Strategy Strategy
}

// DefaultExhaustiveLimit caps the number of paths Exhaustive will enumerate.
const DefaultExhaustiveLimit = 1 << 20

const panicExhaustiveLimitInvalid = "scanline: WithExhaustiveLimit: limit must be > 0"

// Options configures the package-level Solve and SolveResult helpers.
type Options struct {
	Strategy        Strategy
	ExhaustiveLimit int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Strategy:        StrategyVectorized,
		ExhaustiveLimit: DefaultExhaustiveLimit,
	}
}

// WithStrategy selects the solver strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithExhaustiveLimit sets the path-count limit for the Exhaustive strategy.
// Panics when limit ≤ 0 (programmer error).
func WithExhaustiveLimit(limit int) Option {
	if limit <= 0 {
		panic(panicExhaustiveLimitInvalid)
	}

	return func(o *Options) { o.ExhaustiveLimit = limit }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
