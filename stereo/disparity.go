package stereo

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// DisparityMap holds one disparity per pixel, row-major.
type DisparityMap struct {
	width, height int
	maxDisparity  int
	data          []int
}

// NewDisparityMap returns a zeroed width×height map with values in
// [0, maxDisparity].
func NewDisparityMap(width, height, maxDisparity int) (*DisparityMap, error) {
	if width <= 0 || height <= 0 || maxDisparity < 0 {
		return nil, stereoErrorf("NewDisparityMap", ErrInvalidParameter)
	}

	return &DisparityMap{
		width:        width,
		height:       height,
		maxDisparity: maxDisparity,
		data:         make([]int, width*height),
	}, nil
}

// Width returns the number of columns.
func (m *DisparityMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *DisparityMap) Height() int { return m.height }

// MaxDisparity returns the largest representable disparity.
func (m *DisparityMap) MaxDisparity() int { return m.maxDisparity }

// At returns the disparity at (x, y).
func (m *DisparityMap) At(x, y int) (int, error) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, stereoErrorf("At", ErrOutOfBounds)
	}

	return m.data[y*m.width+x], nil
}

// Row returns a copy of row y.
func (m *DisparityMap) Row(y int) ([]int, error) {
	if y < 0 || y >= m.height {
		return nil, stereoErrorf("Row", ErrOutOfBounds)
	}
	out := make([]int, m.width)
	copy(out, m.data[y*m.width:(y+1)*m.width])

	return out, nil
}

// SetRow stores one solved scanline. Concurrent calls on distinct rows are safe.
func (m *DisparityMap) SetRow(y int, path []int) error {
	if y < 0 || y >= m.height {
		return stereoErrorf("SetRow", ErrOutOfBounds)
	}
	if len(path) != m.width {
		return stereoErrorf("SetRow", ErrSizeMismatch)
	}
	for _, d := range path {
		if d < 0 || d > m.maxDisparity {
			return stereoErrorf("SetRow", ErrInvalidParameter)
		}
	}
	copy(m.data[y*m.width:], path)

	return nil
}

// level maps d onto [0, 1]; a zero range maps everything to 0.
func (m *DisparityMap) level(d int) float64 {
	if m.maxDisparity == 0 {
		return 0
	}
	return float64(d) / float64(m.maxDisparity)
}

// ToGray renders the map with 0 as black and MaxDisparity as white.
func (m *DisparityMap) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.width, m.height))
	for i, d := range m.data {
		img.Pix[(i/m.width)*img.Stride+i%m.width] = uint8(m.level(d)*255 + 0.5)
	}

	return img
}

// Heat-map end points: far (small disparity) is cold, near is hot.
var (
	heatCold = colorful.Hsv(240, 0.9, 0.35)
	heatHot  = colorful.Hsv(10, 0.95, 1.0)
)

// ToColor renders a heat map blending heatCold into heatHot in HCL space.
func (m *DisparityMap) ToColor() *image.RGBA {
	palette := make([]color.RGBA, m.maxDisparity+1)
	for d := range palette {
		c := heatCold.BlendHcl(heatHot, m.level(d)).Clamped()
		r, g, b := c.RGB255()
		palette[d] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}

	img := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	for i, d := range m.data {
		img.SetRGBA(i%m.width, i/m.width, palette[d])
	}

	return img
}

// Save writes the map to path; the format follows the extension.
// colored selects ToColor over ToGray.
func (m *DisparityMap) Save(path string, colored bool) error {
	var img image.Image = m.ToGray()
	if colored {
		img = m.ToColor()
	}
	if err := imaging.Save(img, path); err != nil {
		return stereoErrorf("Save", err)
	}

	return nil
}
