package scanline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stereodp/matrix"
)

// forwardPass is implemented by every strategy that fills a parent table.
// The returned terminal column has length d; parents is position-major,
// parents[pos*d + cur] holding the best previous disparity of (cur, pos).
type forwardPass interface {
	strategy() Strategy
	forward(unary, pairwise matrix.Matrix, d, p int) (terminal []float64, parents []int, err error)
}

// New returns the Solver for strategy s.
// Exhaustive is returned with DefaultExhaustiveLimit.
func New(s Strategy) (Solver, error) {
	switch s {
	case StrategyVectorized:
		return Vectorized{}, nil
	case StrategyReference:
		return Reference{}, nil
	case StrategyExhaustive:
		return Exhaustive{Limit: DefaultExhaustiveLimit}, nil
	default:
		return nil, fmt.Errorf("%s: %w", s, ErrUnknownStrategy)
	}
}

// Solve is the package-level convenience entry point.
// It validates, dispatches to the configured strategy and returns the path.
//
// Example:
//
//	path, err := scanline.Solve(unary, pairwise, scanline.WithStrategy(scanline.StrategyReference))
func Solve(unary, pairwise matrix.Matrix, opts ...Option) ([]int, error) {
	res, err := SolveResult(unary, pairwise, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// SolveResult is Solve plus the total cost and terminal minimum-cost column.
func SolveResult(unary, pairwise matrix.Matrix, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	switch o.Strategy {
	case StrategyVectorized:
		return solveWith(Vectorized{}, unary, pairwise)
	case StrategyReference:
		return solveWith(Reference{}, unary, pairwise)
	case StrategyExhaustive:
		return Exhaustive{Limit: o.ExhaustiveLimit}.solve(unary, pairwise)
	default:
		return Result{}, fmt.Errorf("%s: %w", o.Strategy, ErrUnknownStrategy)
	}
}

// solveWith runs the shared pipeline for DP strategies:
// Validate → forward → backtrack.
func solveWith(s forwardPass, unary, pairwise matrix.Matrix) (Result, error) {
	// Stage 1: contract.
	d, p, err := Validate(unary, pairwise)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: forward pass.
	terminal, parents, err := s.forward(unary, pairwise, d, p)
	if err != nil {
		return Result{}, err
	}

	// Stage 3: backtrack from the cheapest terminal disparity.
	path, cost, err := backtrack(terminal, parents, d, p)
	if err != nil {
		return Result{}, err
	}

	return Result{Path: path, Cost: cost, Terminal: terminal, Strategy: s.strategy()}, nil
}

// backtrack turns a parent table into a path. The last disparity is the
// first argmin of terminal; every earlier one is read from parents.
// Overflowed cells may sit in terminal; only an infinite optimum fails.
func backtrack(terminal []float64, parents []int, d, p int) ([]int, float64, error) {
	last, cost, err := matrix.MinArg(terminal)
	if err != nil {
		return nil, 0, scanlineErrorf(ErrEmptyInput, "terminal", err)
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return nil, 0, scanlineErrorf(ErrNonFiniteCost, "accumulated cost", matrix.ErrNaNInf)
	}

	path := make([]int, p)
	path[p-1] = last
	for q := p - 1; q > 0; q-- {
		path[q-1] = parents[q*d+path[q]]
	}

	return path, cost, nil
}
