package stereo

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stereodp/matrix"
	"github.com/katalvlaran/stereodp/scanline"
)

// Matcher defaults.
const (
	DefaultMaxDisparity = 32
	DefaultWeight       = 4.0
	DefaultTruncation   = 2.0
)

const panicWorkersNegative = "stereo: WithWorkers: workers must be >= 0"

// Matcher solves a rectified image pair row by row.
// A Matcher is immutable after NewMatcher and safe for concurrent Match calls.
type Matcher struct {
	maxDisparity int
	solver       scanline.Solver
	workers      int
	logger       *slog.Logger
	unary        UnaryOptions
	model        string
	weight       float64
	truncate     float64
	pairwise     *matrix.Dense
	speckleSize  int
	speckleDiff  int
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithSolver replaces the default Vectorized solver.
func WithSolver(s scanline.Solver) MatcherOption {
	return func(m *Matcher) {
		if s != nil {
			m.solver = s
		}
	}
}

// WithWorkers bounds the number of rows solved at once; 0 means GOMAXPROCS.
// Panics on a negative count.
func WithWorkers(n int) MatcherOption {
	if n < 0 {
		panic(panicWorkersNegative)
	}
	return func(m *Matcher) { m.workers = n }
}

// WithLogger sets the logger; nil keeps the discard logger.
func WithLogger(l *slog.Logger) MatcherOption {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithMetric selects the unary metric.
func WithMetric(metric Metric) MatcherOption {
	return func(m *Matcher) { m.unary.Metric = metric }
}

// WithTruncation caps per-pixel unary costs; 0 disables it.
func WithTruncation(t float64) MatcherOption {
	return func(m *Matcher) { m.unary.Truncate = t }
}

// WithWindow sets the half-width of the unary box aggregation.
func WithWindow(r int) MatcherOption {
	return func(m *Matcher) { m.unary.Window = r }
}

// WithOcclusionCost sets the cost for taps left of the right image.
func WithOcclusionCost(c float64) MatcherOption {
	return func(m *Matcher) { m.unary.OcclusionCost = c }
}

// WithPairwise selects the smoothness model, its weight and, for
// truncated-linear, its truncation in disparity steps.
func WithPairwise(model string, weight, truncate float64) MatcherOption {
	return func(m *Matcher) {
		m.model, m.weight, m.truncate = model, weight, truncate
	}
}

// WithSpeckleFilter runs FilterSpeckles(size, diff) on every map; size 0 disables it.
func WithSpeckleFilter(size, diff int) MatcherOption {
	return func(m *Matcher) { m.speckleSize, m.speckleDiff = size, diff }
}

// NewMatcher validates the options and precomputes the shared pairwise matrix.
func NewMatcher(maxDisparity int, opts ...MatcherOption) (*Matcher, error) {
	if maxDisparity < 0 {
		return nil, stereoErrorf("NewMatcher", ErrInvalidParameter)
	}
	m := &Matcher{
		maxDisparity: maxDisparity,
		solver:       scanline.Vectorized{},
		logger:       slog.New(slog.DiscardHandler),
		unary:        DefaultUnaryOptions(),
		model:        ModelTruncatedLinear,
		weight:       DefaultWeight,
		truncate:     DefaultTruncation,
	}
	for _, set := range opts {
		if set != nil {
			set(m)
		}
	}

	if err := m.unary.validate(); err != nil {
		return nil, stereoErrorf("NewMatcher", err)
	}
	if m.speckleSize < 0 || m.speckleDiff < 0 {
		return nil, stereoErrorf("NewMatcher", ErrInvalidParameter)
	}
	w, err := PairwiseFromModel(m.model, maxDisparity+1, m.weight, m.truncate)
	if err != nil {
		return nil, stereoErrorf("NewMatcher", err)
	}
	m.pairwise = w

	return m, nil
}

// MaxDisparity returns the configured disparity range.
func (m *Matcher) MaxDisparity() int { return m.maxDisparity }

// Solver returns the solver used for every row.
func (m *Matcher) Solver() scanline.Solver { return m.solver }

// Pairwise returns a copy of the shared pairwise matrix.
func (m *Matcher) Pairwise() matrix.Matrix { return m.pairwise.Clone() }

// Match computes the disparity map of a rectified pair.
//
// Rows are independent and solved concurrently, at most Workers at a time.
// Cancellation is checked before each row starts; a row already being
// solved runs to completion. The first row error cancels the rest and is
// returned; no partial map is returned.
func (m *Matcher) Match(ctx context.Context, left, right *image.Gray) (*DisparityMap, error) {
	// Stage 1: inputs.
	if left == nil || right == nil || left.Bounds().Empty() || right.Bounds().Empty() {
		return nil, stereoErrorf("Match", ErrEmptyImage)
	}
	if left.Bounds().Size() != right.Bounds().Size() {
		return nil, stereoErrorf("Match", ErrSizeMismatch)
	}
	width, height := left.Bounds().Dx(), left.Bounds().Dy()
	out, err := NewDisparityMap(width, height, m.maxDisparity)
	if err != nil {
		return nil, err
	}

	workers := m.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Stage 2: fan out one task per row.
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < height; y++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return m.matchRow(left, right, y, out)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	speckles := out.FilterSpeckles(m.speckleSize, m.speckleDiff)

	m.logger.Info("disparity map solved",
		"solver", m.solver.Name(),
		"width", width,
		"height", height,
		"max_disparity", m.maxDisparity,
		"workers", workers,
		"speckle_pixels", speckles,
		"elapsed", time.Since(start),
	)

	return out, nil
}

// matchRow builds the unary matrix of row y, solves it and stores the path.
func (m *Matcher) matchRow(left, right *image.Gray, y int, out *DisparityMap) error {
	l, err := Scanline(left, left.Bounds().Min.Y+y)
	if err != nil {
		return err
	}
	r, err := Scanline(right, right.Bounds().Min.Y+y)
	if err != nil {
		return err
	}

	u, err := UnaryCosts(l, r, m.maxDisparity, m.unary)
	if err != nil {
		return fmt.Errorf("row %d: %w", y, err)
	}
	path, err := m.solver.Solve(u, m.pairwise)
	if err != nil {
		return fmt.Errorf("row %d: %w", y, err)
	}
	m.logger.Debug("row solved", "y", y, "positions", len(path))

	return out.SetRow(y, path)
}
