package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stereodp/matrix"
	"github.com/katalvlaran/stereodp/scanline"
)

// bruteForceLimit caps the paths enumerated per brute-force check.
const bruteForceLimit = 1 << 12

func newVerifyCmd(a *app) *cobra.Command {
	var (
		trials     int
		maxD, maxP int
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Self-check: reference vs vectorized equality and brute-force optimality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if trials < 1 || maxD < 1 || maxP < 1 {
				return fmt.Errorf("--trials, --max-d and --max-p must be >= 1")
			}
			ref, err := a.solver(scanline.StrategyReference.String())
			if err != nil {
				return err
			}
			vec, err := a.solver(scanline.StrategyVectorized.String())
			if err != nil {
				return err
			}
			exh := scanline.Exhaustive{Limit: bruteForceLimit}

			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			brute := 0
			for trial := 0; trial < trials; trial++ {
				d, p := 1+rng.IntN(maxD), 1+rng.IntN(maxP)
				unary, pairwise, err := randomProblem(rng, d, p)
				if err != nil {
					return err
				}

				if _, err = scanline.Equivalent(ref, vec, unary, pairwise); err != nil {
					return fmt.Errorf("trial %d (D=%d, P=%d): %w", trial, d, p, err)
				}

				want, err := exh.Solve(unary, pairwise)
				if errors.Is(err, scanline.ErrTooLarge) {
					continue
				}
				if err != nil {
					return err
				}
				brute++
				got, err := vec.Solve(unary, pairwise)
				if err != nil {
					return err
				}
				wantCost, err := scanline.PathCost(unary, pairwise, want)
				if err != nil {
					return fmt.Errorf("trial %d: exhaustive path: %w", trial, err)
				}
				gotCost, err := scanline.PathCost(unary, pairwise, got)
				if err != nil {
					return fmt.Errorf("trial %d: %s path: %w", trial, vec.Name(), err)
				}
				if gotCost != wantCost {
					return fmt.Errorf("trial %d (D=%d, P=%d): DP cost %g, optimum %g", trial, d, p, gotCost, wantCost)
				}
			}

			a.logger.Info("verification passed", "trials", trials, "brute_force", brute, "seed", seed)
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d trials, %d brute-force checked\n", trials, brute)

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&trials, "trials", 200, "number of random problems")
	f.IntVar(&maxD, "max-d", 6, "largest number of disparities")
	f.IntVar(&maxP, "max-p", 8, "largest number of positions")
	f.Uint64Var(&seed, "seed", 1, "random seed")

	return cmd
}

// randomProblem draws uniform costs in [-5, 5).
func randomProblem(rng *rand.Rand, d, p int) (*matrix.Dense, *matrix.Dense, error) {
	unary, err := matrix.NewDense(d, p)
	if err != nil {
		return nil, nil, err
	}
	pairwise, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, nil, err
	}
	draw := func(_, _ int, _ float64) float64 { return rng.Float64()*10 - 5 }
	if err = unary.Apply(draw); err != nil {
		return nil, nil, err
	}
	if err = pairwise.Apply(draw); err != nil {
		return nil, nil, err
	}

	return unary, pairwise, nil
}
