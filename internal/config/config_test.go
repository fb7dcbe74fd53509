package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/stereodp/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "vectorized", cfg.Strategy)
	assert.Equal(t, 32, cfg.MaxDisparity)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
strategy: Reference
max_disparity: 16
unary:
  metric: ssd
  window: 2
pairwise:
  model: potts
  weight: 10
log:
  level: DEBUG
  format: json
metrics:
  enabled: true
`))
	require.NoError(t, err)
	assert.Equal(t, "reference", cfg.Strategy)
	assert.Equal(t, 16, cfg.MaxDisparity)
	assert.Equal(t, "ssd", cfg.Unary.Metric)
	assert.Equal(t, 2, cfg.Unary.Window)
	assert.Equal(t, 20.0, cfg.Unary.OcclusionCost, "untouched keys keep defaults")
	assert.Equal(t, "potts", cfg.Pairwise.Model)
	assert.Equal(t, 10.0, cfg.Pairwise.Weight)
	assert.Equal(t, 2.0, cfg.Pairwise.Truncate)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"UnknownKey":      "colour: red\n",
		"BadYAML":         "strategy: [\n",
		"BadStrategy":     "strategy: greedy\n",
		"NegativeRange":   "max_disparity: -1\n",
		"BadModel":        "pairwise: {model: cauchy}\n",
		"NegativeWeight":  "pairwise: {weight: -2}\n",
		"BadLevel":        "log: {level: loud}\n",
		"NegativeWorkers": "workers: -3\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestValidate_FieldInMessage(t *testing.T) {
	cfg := config.Default()
	cfg.Unary.Metric = "ncc"
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Unary.Metric")
	assert.Contains(t, err.Error(), "oneof")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereodp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_disparity: 8\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxDisparity)

	_, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
