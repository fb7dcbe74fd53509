package stereo_test

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/katalvlaran/stereodp/stereo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisparityMap_Access(t *testing.T) {
	_, err := stereo.NewDisparityMap(0, 2, 4)
	assert.ErrorIs(t, err, stereo.ErrInvalidParameter)

	m, err := stereo.NewDisparityMap(3, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 4, m.MaxDisparity())

	require.NoError(t, m.SetRow(1, []int{0, 2, 4}))
	d, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = 99 // copy, not a view
	d, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	_, err = m.At(3, 0)
	assert.ErrorIs(t, err, stereo.ErrOutOfBounds)
	_, err = m.Row(-1)
	assert.ErrorIs(t, err, stereo.ErrOutOfBounds)
	assert.ErrorIs(t, m.SetRow(0, []int{1, 2}), stereo.ErrSizeMismatch)
	assert.ErrorIs(t, m.SetRow(0, []int{1, 2, 5}), stereo.ErrInvalidParameter)
	assert.ErrorIs(t, m.SetRow(2, []int{1, 2, 3}), stereo.ErrOutOfBounds)
}

func TestDisparityMap_Render(t *testing.T) {
	m, err := stereo.NewDisparityMap(3, 1, 4)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(0, []int{0, 2, 4}))

	gray := m.ToGray()
	assert.Equal(t, []uint8{0, 128, 255}, gray.Pix)

	heat := m.ToColor()
	c0 := heat.RGBAAt(0, 0)
	c2 := heat.RGBAAt(2, 0)
	assert.Equal(t, uint8(0xff), c0.A)
	assert.NotEqual(t, c0, c2)
	assert.Greater(t, c2.R, c0.R, "near pixels are warmer")

	flat, err := stereo.NewDisparityMap(2, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 0}, flat.ToGray().Pix)
}

func TestDisparityMap_Save(t *testing.T) {
	m, err := stereo.NewDisparityMap(4, 3, 8)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(2, []int{8, 8, 8, 8}))

	dir := t.TempDir()
	for _, colored := range []bool{false, true} {
		path := filepath.Join(dir, map[bool]string{false: "gray.png", true: "heat.png"}[colored])
		require.NoError(t, m.Save(path, colored))

		img, err := imaging.Open(path)
		require.NoError(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
		assert.Equal(t, 3, img.Bounds().Dy())
	}

	gray, err := imaging.Open(filepath.Join(dir, "gray.png"))
	require.NoError(t, err)
	assert.Equal(t, color.GrayModel.Convert(color.Gray{Y: 255}), color.GrayModel.Convert(gray.At(0, 2)))

	assert.Error(t, m.Save(filepath.Join(dir, "out.unknown"), false))
}
