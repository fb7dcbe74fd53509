package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stereodp/stereo"
)

func newDisparityCmd(a *app) *cobra.Command {
	var (
		output       string
		colored      bool
		maxDisparity int
		workers      int
		strategy     string
		blurSigma    float64
		metric       string
		model        string
		weight       float64
		speckleSize  int
	)

	cmd := &cobra.Command{
		Use:   "disparity <left> <right>",
		Short: "Compute a disparity map from a rectified image pair",
		Long: `Compute a disparity map from a rectified image pair.

Every image row is solved independently; disparity d at column x matches
left[x] with right[x-d]. Flags override the values of --config.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("max-disparity") {
				cfg.MaxDisparity = maxDisparity
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("strategy") {
				cfg.Strategy = strategy
			}
			if flags.Changed("blur") {
				cfg.Prefilter.BlurSigma = blurSigma
			}
			if flags.Changed("metric") {
				cfg.Unary.Metric = metric
			}
			if flags.Changed("model") {
				cfg.Pairwise.Model = model
			}
			if flags.Changed("weight") {
				cfg.Pairwise.Weight = weight
			}
			if flags.Changed("speckle-size") {
				cfg.Postfilter.SpeckleSize = speckleSize
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			s, err := a.solver(cfg.Strategy)
			if err != nil {
				return err
			}
			unaryMetric, err := stereo.ParseMetric(cfg.Unary.Metric)
			if err != nil {
				return err
			}
			m, err := stereo.NewMatcher(cfg.MaxDisparity,
				stereo.WithSolver(s),
				stereo.WithWorkers(cfg.Workers),
				stereo.WithLogger(a.logger),
				stereo.WithMetric(unaryMetric),
				stereo.WithTruncation(cfg.Unary.Truncate),
				stereo.WithWindow(cfg.Unary.Window),
				stereo.WithOcclusionCost(cfg.Unary.OcclusionCost),
				stereo.WithPairwise(cfg.Pairwise.Model, cfg.Pairwise.Weight, cfg.Pairwise.Truncate),
				stereo.WithSpeckleFilter(cfg.Postfilter.SpeckleSize, cfg.Postfilter.SpeckleDiff),
			)
			if err != nil {
				return err
			}

			start := time.Now()
			left, err := stereo.LoadGray(args[0], cfg.Prefilter.BlurSigma)
			if err != nil {
				return err
			}
			right, err := stereo.LoadGray(args[1], cfg.Prefilter.BlurSigma)
			if err != nil {
				return err
			}
			a.logger.Debug("images loaded", "left", args[0], "right", args[1],
				"size", left.Bounds().Size().String(), "elapsed", time.Since(start))

			dm, err := m.Match(cmd.Context(), left, right)
			if err != nil {
				return err
			}
			if err = dm.Save(output, colored); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, max disparity %d)\n",
				output, dm.Width(), dm.Height(), dm.MaxDisparity())

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output image path (format from extension)")
	f.BoolVar(&colored, "color", false, "write a color heat map instead of gray levels")
	f.IntVar(&maxDisparity, "max-disparity", stereo.DefaultMaxDisparity, "largest disparity searched")
	f.IntVar(&workers, "workers", 0, "rows solved concurrently (0 = GOMAXPROCS)")
	f.StringVar(&strategy, "strategy", "vectorized", "solver strategy: vectorized, reference")
	f.Float64Var(&blurSigma, "blur", 0, "Gaussian prefilter radius (0 = off)")
	f.StringVar(&metric, "metric", "abs", "unary metric: abs, squared")
	f.StringVar(&model, "model", stereo.ModelTruncatedLinear, "smoothness model: potts, linear, truncated-linear, quadratic")
	f.Float64Var(&weight, "weight", stereo.DefaultWeight, "smoothness weight")
	f.IntVar(&speckleSize, "speckle-size", 0, "replace regions of at most this many pixels (0 = off)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
