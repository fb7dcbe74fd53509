// Package metrics instruments scanline solvers with Prometheus collectors.
//
// The CLI registers the collectors on a private registry and prints it in
// the text exposition format after a run; no HTTP endpoint is served.
package metrics

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/stereodp/matrix"
	"github.com/katalvlaran/stereodp/scanline"
)

const (
	namespace = "stereodp"
	subsystem = "solver"
)

// Status label values.
const (
	StatusOK            = "ok"
	StatusShapeMismatch = "shape_mismatch"
	StatusEmptyInput    = "empty_input"
	StatusNonFinite     = "non_finite"
	StatusTooLarge      = "too_large"
	StatusError         = "error"
)

// SolverMetrics is the collector set shared by every instrumented solver.
type SolverMetrics struct {
	// Solves counts Solve calls. Labels: strategy, status.
	Solves *prometheus.CounterVec

	// Duration observes Solve latency in seconds. Labels: strategy.
	Duration *prometheus.HistogramVec

	// Cells counts D·P cells of successful solves. Labels: strategy.
	Cells *prometheus.CounterVec
}

// NewSolverMetrics registers the collectors on reg. Registering on a
// registry that already holds them returns the existing collectors.
func NewSolverMetrics(reg prometheus.Registerer) (*SolverMetrics, error) {
	solves, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "solves_total",
		Help:      "Total scanline solves by strategy and outcome",
	}, []string{"strategy", "status"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "duration_seconds",
		Help:      "Scanline solve latency in seconds",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"strategy"}))
	if err != nil {
		return nil, err
	}
	cells, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cells_total",
		Help:      "Total disparity×position cells processed",
	}, []string{"strategy"}))
	if err != nil {
		return nil, err
	}

	return &SolverMetrics{Solves: solves, Duration: duration, Cells: cells}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, fmt.Errorf("metrics: register: %w", err)
	}

	return c, nil
}

// Instrument wraps s so every Solve is counted and timed on reg.
func Instrument(s scanline.Solver, reg prometheus.Registerer) (scanline.Solver, error) {
	m, err := NewSolverMetrics(reg)
	if err != nil {
		return nil, err
	}

	return m.Wrap(s), nil
}

// Wrap returns s decorated with m.
func (m *SolverMetrics) Wrap(s scanline.Solver) scanline.Solver {
	return &instrumented{next: s, m: m}
}

type instrumented struct {
	next scanline.Solver
	m    *SolverMetrics
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) Solve(unary, pairwise matrix.Matrix) ([]int, error) {
	name := i.next.Name()
	start := time.Now()
	path, err := i.next.Solve(unary, pairwise)
	i.m.Duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	i.m.Solves.WithLabelValues(name, Status(err)).Inc()
	if err == nil {
		i.m.Cells.WithLabelValues(name).Add(float64(unary.Rows() * unary.Cols()))
	}

	return path, err
}

// Status classifies a solver error into a status label value.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, scanline.ErrShapeMismatch):
		return StatusShapeMismatch
	case errors.Is(err, scanline.ErrEmptyInput):
		return StatusEmptyInput
	case errors.Is(err, scanline.ErrNonFiniteCost):
		return StatusNonFinite
	case errors.Is(err, scanline.ErrTooLarge):
		return StatusTooLarge
	default:
		return StatusError
	}
}

// WriteText writes everything g gathers in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write: %w", err)
		}
	}

	return nil
}
