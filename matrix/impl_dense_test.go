// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/stereodp/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetNumericPolicy checks that the default policy rejects NaN/Inf and the
// relaxed policy stores them.
func TestSetNumericPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	relaxed, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.Inf(1)))
	v, err := relaxed.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

// TestNewDenseFromRows covers the happy path, ragged rows and empty input.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 5, 2}, {4, 1, 3}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFromRows([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0) // modify the clone, but not the original

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestRowColCopies verifies Row/Col return independent copies and bounds errors.
func TestRowColCopies(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 99
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v, "Row must copy")

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, col)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestApplyPolicy verifies Apply transforms in place and enforces the numeric policy.
func TestApplyPolicy(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * 2 }))
	require.Equal(t, "[2, 4]\n[6, 8]\n", m.String())

	err = m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 1 {
			return math.Inf(1)
		}
		return v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// fixed is a minimal non-Dense Matrix used to exercise generic fallbacks.
type fixed struct {
	r, c int
	v    float64
}

func (f fixed) Rows() int { return f.r }
func (f fixed) Cols() int { return f.c }
func (f fixed) At(_, _ int) (float64, error) { return f.v, nil }
func (f fixed) Set(_, _ int, _ float64) error { return nil }
func (f fixed) Clone() matrix.Matrix { return f }

// TestAsDense covers identity on *Dense and copying of other implementations.
func TestAsDense(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	same, err := matrix.AsDense(d)
	require.NoError(t, err)
	require.Same(t, d, same)

	cp, err := matrix.AsDense(fixed{r: 2, c: 3, v: math.NaN()})
	require.NoError(t, err, "AsDense must not validate values")
	require.Equal(t, 2, cp.Rows())
	require.Equal(t, 3, cp.Cols())
	v, _ := cp.At(1, 2)
	require.True(t, math.IsNaN(v))

	_, err = matrix.AsDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTransposeAndFill covers the small helpers in methods.go.
func TestTransposeAndFill(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", tr.String())

	require.NoError(t, matrix.Fill(tr, 7))
	require.Equal(t, "[7, 7]\n[7, 7]\n[7, 7]\n", tr.String())
	require.ErrorIs(t, matrix.Fill(tr, math.NaN()), matrix.ErrNaNInf)
}
