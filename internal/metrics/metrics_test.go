package metrics_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stereodp/internal/metrics"
	"github.com/katalvlaran/stereodp/matrix"
	"github.com/katalvlaran/stereodp/scanline"
)

func problem(t *testing.T) (*matrix.Dense, *matrix.Dense) {
	t.Helper()
	u, err := matrix.NewDenseFromRows([][]float64{{1, 5, 2}, {4, 1, 3}})
	require.NoError(t, err)
	w, err := matrix.NewDenseFromRows([][]float64{{0, 2}, {2, 0}})
	require.NoError(t, err)
	return u, w
}

func TestInstrument_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewSolverMetrics(reg)
	require.NoError(t, err)
	s := m.Wrap(scanline.Reference{})
	assert.Equal(t, "reference", s.Name())

	u, w := problem(t)
	path, err := s.Solve(u, w)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, path)

	_, err = s.Solve(u, u) // 2×3 pairwise
	require.ErrorIs(t, err, scanline.ErrShapeMismatch)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("reference", metrics.StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("reference", metrics.StatusShapeMismatch)))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.Cells.WithLabelValues("reference")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
}

func TestInstrument_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := metrics.Instrument(scanline.Vectorized{}, reg)
	require.NoError(t, err)
	b, err := metrics.Instrument(scanline.Reference{}, reg)
	require.NoError(t, err)

	u, w := problem(t)
	_, err = a.Solve(u, w)
	require.NoError(t, err)
	_, err = b.Solve(u, w)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, `stereodp_solver_solves_total{status="ok",strategy="vectorized"} 1`)
	assert.Contains(t, out, `stereodp_solver_solves_total{status="ok",strategy="reference"} 1`)
	assert.Contains(t, out, "# TYPE stereodp_solver_duration_seconds histogram")
	assert.Contains(t, out, `stereodp_solver_cells_total{strategy="vectorized"} 6`)
}

func TestInstrument_ConflictingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "stereodp", Subsystem: "solver", Name: "solves_total", Help: "clash",
	}))

	_, err := metrics.Instrument(scanline.Reference{}, reg)
	assert.Error(t, err)
}

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, metrics.StatusOK},
		{scanline.ErrShapeMismatch, metrics.StatusShapeMismatch},
		{fmt.Errorf("unary: %w", scanline.ErrEmptyInput), metrics.StatusEmptyInput},
		{scanline.ErrNonFiniteCost, metrics.StatusNonFinite},
		{scanline.ErrTooLarge, metrics.StatusTooLarge},
		{errors.New("boom"), metrics.StatusError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, metrics.Status(tc.err), "%v", tc.err)
	}
}
