package stereo_test

import (
	"testing"

	"github.com/katalvlaran/stereodp/stereo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnaryCosts(t *testing.T) {
	left := []float64{10, 20, 30}
	right := []float64{10, 20, 30}

	cases := []struct {
		name string
		opts stereo.UnaryOptions
		want string
	}{
		{"Abs", stereo.UnaryOptions{Metric: stereo.AbsDiff, OcclusionCost: 7}, "[0, 0, 0]\n[7, 10, 10]\n"},
		{"Truncated", stereo.UnaryOptions{Metric: stereo.AbsDiff, Truncate: 5, OcclusionCost: 7}, "[0, 0, 0]\n[7, 5, 5]\n"},
		{"Squared", stereo.UnaryOptions{Metric: stereo.SquaredDiff, OcclusionCost: 7}, "[0, 0, 0]\n[7, 100, 100]\n"},
		{"Window", stereo.UnaryOptions{Metric: stereo.AbsDiff, Window: 1, OcclusionCost: 7}, "[0, 0, 0]\n[17, 27, 20]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := stereo.UnaryCosts(left, right, 1, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, 2, u.Rows())
			assert.Equal(t, 3, u.Cols())
			assert.Equal(t, tc.want, u.String())
		})
	}
}

func TestUnaryCosts_Errors(t *testing.T) {
	ok := stereo.DefaultUnaryOptions()

	_, err := stereo.UnaryCosts([]float64{1, 2}, []float64{1}, 1, ok)
	assert.ErrorIs(t, err, stereo.ErrSizeMismatch)

	_, err = stereo.UnaryCosts(nil, nil, 1, ok)
	assert.ErrorIs(t, err, stereo.ErrEmptyImage)

	_, err = stereo.UnaryCosts([]float64{1}, []float64{1}, -1, ok)
	assert.ErrorIs(t, err, stereo.ErrInvalidParameter)

	bad := ok
	bad.Metric = stereo.Metric(9)
	_, err = stereo.UnaryCosts([]float64{1}, []float64{1}, 0, bad)
	assert.ErrorIs(t, err, stereo.ErrUnknownMetric)

	bad = ok
	bad.Truncate = -1
	_, err = stereo.UnaryCosts([]float64{1}, []float64{1}, 0, bad)
	assert.ErrorIs(t, err, stereo.ErrInvalidParameter)

	bad = ok
	bad.Window = -2
	_, err = stereo.UnaryCosts([]float64{1}, []float64{1}, 0, bad)
	assert.ErrorIs(t, err, stereo.ErrInvalidParameter)
}

func TestParseMetric(t *testing.T) {
	for _, name := range []string{"abs", "SAD", " absdiff "} {
		m, err := stereo.ParseMetric(name)
		require.NoError(t, err)
		assert.Equal(t, stereo.AbsDiff, m)
	}
	m, err := stereo.ParseMetric("ssd")
	require.NoError(t, err)
	assert.Equal(t, stereo.SquaredDiff, m)
	assert.Equal(t, "squared", m.String())

	_, err = stereo.ParseMetric("ncc")
	assert.ErrorIs(t, err, stereo.ErrUnknownMetric)
}
