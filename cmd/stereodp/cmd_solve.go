package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stereodp/internal/costio"
	"github.com/katalvlaran/stereodp/scanline"
)

type solveOutput struct {
	Strategy string  `json:"strategy"`
	Path     []int   `json:"path"`
	Cost     float64 `json:"cost"`
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		strategy string
		withCost bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "solve <costs.{json,yaml}>",
		Short: "Solve one scanline problem from a cost file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strategy") {
				strategy = a.cfg.Strategy
			}
			s, err := a.solver(strategy)
			if err != nil {
				return err
			}

			unary, pairwise, err := costio.Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("cost file loaded", "path", args[0],
				"disparities", unary.Rows(), "positions", unary.Cols())

			path, err := s.Solve(unary, pairwise)
			if err != nil {
				return err
			}
			cost, err := scanline.PathCost(unary, pairwise, path)
			if err != nil {
				return err
			}
			a.logger.Info("scanline solved", "solver", s.Name(), "positions", len(path), "cost", cost)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(solveOutput{Strategy: s.Name(), Path: path, Cost: cost})
			}
			fmt.Fprintln(out, joinInts(path))
			if withCost {
				fmt.Fprintf(out, "cost: %g\n", cost)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "vectorized", "solver strategy: vectorized, reference, exhaustive")
	cmd.Flags().BoolVar(&withCost, "cost", false, "also print the total path cost")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
