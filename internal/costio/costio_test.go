package costio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/stereodp/internal/costio"
	"github.com/katalvlaran/stereodp/scanline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_JSONAndYAMLAgree(t *testing.T) {
	js := write(t, "costs.json", `{"unary": [[1, 5, 2], [4, 1, 3]], "pairwise": [[0, 2], [2, 0]]}`)
	ym := write(t, "costs.yml", "unary:\n  - [1, 5, 2]\n  - [4, 1, 3]\npairwise: [[0, 2], [2, 0]]\n")

	for _, path := range []string{js, ym} {
		u, w, err := costio.Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, "[1, 5, 2]\n[4, 1, 3]\n", u.String())

		got, err := scanline.Solve(u, w)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 1}, got)
	}
}

func TestDecode_PositionMajor(t *testing.T) {
	doc := `{"layout": "position-major", "unary": [[1, 4], [5, 1], [2, 3]], "pairwise": [[0, 2], [2, 0]]}`
	u, _, err := costio.Decode(strings.NewReader(doc), costio.JSON)
	require.NoError(t, err)
	assert.Equal(t, "[1, 5, 2]\n[4, 1, 3]\n", u.String())
}

// YAML can spell non-finite values; they must reach the solver intact.
func TestDecode_NonFiniteReachesSolver(t *testing.T) {
	doc := "unary: [[1, .nan], [2, 3]]\npairwise: [[0, .inf], [1, 0]]\n"
	u, w, err := costio.Decode(strings.NewReader(doc), costio.YAML)
	require.NoError(t, err)

	_, err = scanline.Solve(u, w)
	assert.ErrorIs(t, err, scanline.ErrNonFiniteCost)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name   string
		doc    string
		format costio.Format
	}{
		{"BadJSON", `{"unary": [[1,`, costio.JSON},
		{"UnknownField", `{"unary": [[1]], "pairwise": [[0]], "extra": 1}`, costio.JSON},
		{"MissingPairwise", `{"unary": [[1]]}`, costio.JSON},
		{"Ragged", "unary: [[1, 2], [3]]\npairwise: [[0, 1], [1, 0]]\n", costio.YAML},
		{"BadLayout", `{"layout": "diagonal", "unary": [[1]], "pairwise": [[0]]}`, costio.JSON},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := costio.Decode(strings.NewReader(tc.doc), tc.format)
			assert.ErrorIs(t, err, costio.ErrMalformed)
		})
	}

	_, _, err := costio.Decode(strings.NewReader("{}"), costio.Format(7))
	assert.ErrorIs(t, err, costio.ErrUnsupportedFormat)
}

func TestFormatFor(t *testing.T) {
	f, err := costio.FormatFor("a/b/COSTS.YAML")
	require.NoError(t, err)
	assert.Equal(t, costio.YAML, f)

	_, err = costio.FormatFor("costs.csv")
	assert.ErrorIs(t, err, costio.ErrUnsupportedFormat)

	_, _, err = costio.Load("costs.toml")
	assert.ErrorIs(t, err, costio.ErrUnsupportedFormat)

	_, _, err = costio.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
