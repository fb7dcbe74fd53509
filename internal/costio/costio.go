// Package costio reads scanline cost matrices from JSON or YAML files.
//
// Document shape:
//
//	{"unary": [[1, 5, 2], [4, 1, 3]], "pairwise": [[0, 2], [2, 0]]}
//
// unary rows are disparities by default; with "layout": "position-major"
// rows are positions and the matrix is transposed on load. Values are
// loaded without the NaN/Inf check so the solver itself reports
// non-finite costs. JSON cannot carry them; YAML can (.nan, .inf).
package costio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stereodp/matrix"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .json, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("costio: unsupported format")

	// ErrMalformed indicates a document that does not decode or is missing a matrix.
	ErrMalformed = errors.New("costio: malformed cost document")
)

// Format is a document encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

// Layouts accepted in Document.Layout.
const (
	LayoutDisparityMajor = "disparity-major"
	LayoutPositionMajor  = "position-major"
)

// Document is the on-disk form.
type Document struct {
	Unary    [][]float64 `json:"unary" yaml:"unary"`
	Pairwise [][]float64 `json:"pairwise" yaml:"pairwise"`
	Layout   string      `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// FormatFor maps a file extension onto a Format.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads the document at path, choosing the decoder by extension.
func Load(path string) (unary, pairwise *matrix.Dense, err error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("costio: %w", err)
	}

	return Decode(bytes.NewReader(data), format)
}

// Decode parses one document from r.
func Decode(r io.Reader, format Format) (unary, pairwise *matrix.Dense, err error) {
	var doc Document
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	default:
		return nil, nil, fmt.Errorf("format %d: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return doc.Matrices()
}

// Matrices converts the document into Dense matrices.
func (d Document) Matrices() (unary, pairwise *matrix.Dense, err error) {
	if len(d.Unary) == 0 || len(d.Pairwise) == 0 {
		return nil, nil, fmt.Errorf("%w: unary and pairwise are both required", ErrMalformed)
	}

	if unary, err = matrix.NewDenseFromRows(d.Unary, matrix.WithNoValidateNaNInf()); err != nil {
		return nil, nil, fmt.Errorf("%w: unary: %w", ErrMalformed, err)
	}
	if pairwise, err = matrix.NewDenseFromRows(d.Pairwise, matrix.WithNoValidateNaNInf()); err != nil {
		return nil, nil, fmt.Errorf("%w: pairwise: %w", ErrMalformed, err)
	}

	switch d.Layout {
	case "", LayoutDisparityMajor:
	case LayoutPositionMajor:
		if unary, err = matrix.Transpose(unary); err != nil {
			return nil, nil, fmt.Errorf("%w: unary: %w", ErrMalformed, err)
		}
	default:
		return nil, nil, fmt.Errorf("%w: layout %q", ErrMalformed, d.Layout)
	}

	return unary, pairwise, nil
}
