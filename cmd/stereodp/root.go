package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stereodp/internal/config"
	"github.com/katalvlaran/stereodp/internal/logging"
	"github.com/katalvlaran/stereodp/internal/metrics"
	"github.com/katalvlaran/stereodp/scanline"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	// persistent flags
	configPath string
	logLevel   string
	logFormat  string
	metrics    bool

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
}

// execute runs the CLI with args. When metrics are enabled they are written
// to stderr after the command returns, failed runs included.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.registry != nil {
		if werr := metrics.WriteText(stderr, a.registry); werr != nil {
			err = errors.Join(err, werr)
		}
	}

	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "stereodp",
		Short: "Scanline dynamic-programming stereo matcher",
		Long: `stereodp computes minimum-cost disparity paths along image scanlines.

It can solve a single cost problem from a JSON/YAML file, build a full
disparity map from a rectified image pair, or self-check its solvers.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "auto", "log format: text, json, auto")
	pf.BoolVar(&a.metrics, "metrics", false, "print solver metrics (Prometheus text format) to stderr on exit")

	root.AddCommand(newSolveCmd(a), newDisparityCmd(a), newVerifyCmd(a))

	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger and the optional metrics registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") || a.configPath == "" {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") || a.configPath == "" {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("metrics") {
		cfg.Metrics.Enabled = a.metrics
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.With("run", uuid.NewString(), "command", cmd.Name())
	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
	}

	return nil
}

// solver builds the named strategy, instrumented when metrics are on.
func (a *app) solver(name string) (scanline.Solver, error) {
	st, err := scanline.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	s, err := scanline.New(st)
	if err != nil {
		return nil, err
	}
	if a.registry == nil {
		return s, nil
	}
	wrapped, err := metrics.Instrument(s, a.registry)
	if err != nil {
		return nil, fmt.Errorf("instrument %s: %w", s.Name(), err)
	}

	return wrapped, nil
}
