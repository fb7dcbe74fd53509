package stereo

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// MaxBlurSigma is the largest Gaussian prefilter radius ToGray accepts.
const MaxBlurSigma = 50.0

// LoadGray decodes the image at path and returns it as 8-bit gray.
// When sigma > 0 a Gaussian blur of that radius is applied first; see ToGray.
// EXIF orientation is honored.
func LoadGray(path string, sigma float64) (*image.Gray, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, stereoErrorf("LoadGray", err)
	}

	return ToGray(img, sigma)
}

// ToGray converts any image to 8-bit gray with an optional Gaussian
// prefilter; sigma must lie in [0, MaxBlurSigma]. The result always starts
// at the origin.
func ToGray(img image.Image, sigma float64) (*image.Gray, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, stereoErrorf("ToGray", ErrEmptyImage)
	}
	if math.IsNaN(sigma) || sigma < 0 || sigma > MaxBlurSigma {
		return nil, stereoErrorf("ToGray", ErrInvalidParameter)
	}

	if sigma > 0 {
		img = blur.Gaussian(img, sigma)
	}
	nrgba := imaging.Grayscale(img) // R == G == B after this

	b := nrgba.Bounds()
	w, h := b.Dx(), b.Dy()
	gray := image.NewGray(image.Rect(0, 0, w, h))
	var x, y int
	for y = 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride:]
		dst := gray.Pix[y*gray.Stride:]
		for x = 0; x < w; x++ {
			dst[x] = src[x*4]
		}
	}

	return gray, nil
}

// Scanline returns row y of img as float64 intensities in [0, 255].
func Scanline(img *image.Gray, y int) ([]float64, error) {
	if img == nil {
		return nil, stereoErrorf("Scanline", ErrEmptyImage)
	}
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return nil, stereoErrorf("Scanline", ErrOutOfBounds)
	}

	row := make([]float64, b.Dx())
	for x := range row {
		row[x] = float64(img.GrayAt(b.Min.X+x, y).Y)
	}

	return row, nil
}
