// Package config loads the YAML configuration of the stereodp CLI.
//
// Every key is optional; missing keys keep the values from Default. Values
// are checked with go-playground/validator struct tags and reported as
// ErrInvalidConfig.
//
// Example file:
//
//	strategy: vectorized
//	max_disparity: 32
//	unary: {metric: abs, truncate: 0, window: 0, occlusion_cost: 20}
//	pairwise: {model: truncated-linear, weight: 4, truncate: 2}
//	prefilter: {blur_sigma: 0}
//	postfilter: {speckle_size: 0, speckle_diff: 1}
//	workers: 0
//	log: {level: info, format: auto}
//	metrics: {enabled: false}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for malformed YAML or out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Strategy     string     `yaml:"strategy" validate:"oneof=vectorized reference"`
	MaxDisparity int        `yaml:"max_disparity" validate:"gte=0,lte=1024"`
	Unary        Unary      `yaml:"unary"`
	Pairwise     Pairwise   `yaml:"pairwise"`
	Prefilter    Prefilter  `yaml:"prefilter"`
	Postfilter   Postfilter `yaml:"postfilter"`
	Workers      int        `yaml:"workers" validate:"gte=0"`
	Log          Log        `yaml:"log"`
	Metrics      Metrics    `yaml:"metrics"`
}

// Unary configures the matching cost.
type Unary struct {
	Metric        string  `yaml:"metric" validate:"oneof=abs sad squared ssd"`
	Truncate      float64 `yaml:"truncate" validate:"gte=0"`
	Window        int     `yaml:"window" validate:"gte=0,lte=64"`
	OcclusionCost float64 `yaml:"occlusion_cost" validate:"gte=0"`
}

// Pairwise configures the smoothness cost.
type Pairwise struct {
	Model    string  `yaml:"model" validate:"oneof=potts linear truncated-linear quadratic"`
	Weight   float64 `yaml:"weight" validate:"gte=0"`
	Truncate float64 `yaml:"truncate" validate:"gte=0"`
}

// Prefilter configures image smoothing before matching.
type Prefilter struct {
	BlurSigma float64 `yaml:"blur_sigma" validate:"gte=0,lte=50"`
}

// Postfilter configures disparity-map cleanup.
type Postfilter struct {
	SpeckleSize int `yaml:"speckle_size" validate:"gte=0"`
	SpeckleDiff int `yaml:"speckle_diff" validate:"gte=0"`
}

// Log configures the CLI logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json auto"`
}

// Metrics toggles the Prometheus dump after a run.
type Metrics struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Strategy:     "vectorized",
		MaxDisparity: 32,
		Unary:        Unary{Metric: "abs", OcclusionCost: 20},
		Pairwise:     Pairwise{Model: "truncated-linear", Weight: 4, Truncate: 2},
		Postfilter:   Postfilter{SpeckleDiff: 1},
		Log:          Log{Level: "info", Format: "auto"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validate is shared; validator caches struct metadata per instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its tag.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %s%s", fe.Namespace(), fe.Value(), fe.Tag(), param(fe.Param())))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func param(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}

// normalize lower-cases the enumerated string fields.
func (c *Config) normalize() {
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	c.Unary.Metric = strings.ToLower(strings.TrimSpace(c.Unary.Metric))
	c.Pairwise.Model = strings.ToLower(strings.TrimSpace(c.Pairwise.Model))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}
