// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chainstat/chain"
	"github.com/katalvlaran/chainstat/vec3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CHAINSTAT_"

// Model names accepted in job files.
const (
	ModelFJC  = "fjc"
	ModelFRC  = "frc"
	ModelEFJC = "efjc"
)

// Defaults.
const (
	DefaultOutputDir = "out"
	DefaultWorkers   = 1
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultBins      = 1000
	DefaultSamples   = 1_000_000
)

var (
	// ErrInvalidConfig wraps every load or validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownModel indicates a job model name Build cannot construct.
	ErrUnknownModel = errors.New("config: unknown model")
)

// Runtime holds process-wide settings; each field can be overridden from
// the environment.
type Runtime struct {
	OutputDir string `yaml:"output_dir" env:"OUTPUT_DIR" validate:"required"`
	Workers   int    `yaml:"workers" env:"WORKERS" validate:"gte=1"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" validate:"oneof=text json"`
}

// JobDefaults fill zero-valued job fields.
type JobDefaults struct {
	Bins    int `yaml:"bins" validate:"gte=1"`
	Samples int `yaml:"samples" validate:"gte=1"`
	Workers int `yaml:"workers" validate:"gte=1"`
}

// Job describes one radial-distribution estimation.
//
// For "frc" either Angle (radians) or Persistence must be set; Persistence κ
// selects θ = sqrt(2/(N·κ)), the freely-rotating chain that approximates a
// wormlike chain of nondimensional persistence length κ.
type Job struct {
	Name        string  `yaml:"name" validate:"required"`
	Model       string  `yaml:"model" validate:"required,oneof=fjc frc efjc"`
	Links       int     `yaml:"links" validate:"gte=1"`
	Angle       float64 `yaml:"angle" validate:"gte=0,lt=3.141592653589793"`
	Persistence float64 `yaml:"persistence" validate:"gte=0"`
	Stiffness   float64 `yaml:"stiffness" validate:"required_if=Model efjc,gte=0"`
	Bins        int     `yaml:"bins" validate:"gte=1"`
	Samples     int     `yaml:"samples" validate:"gte=1"`
	Workers     int     `yaml:"workers" validate:"gte=1"`
	Seed        *uint64 `yaml:"seed"`
	Plot        bool    `yaml:"plot"`
}

// Config is the full run configuration.
type Config struct {
	Runtime  `yaml:",inline"`
	Defaults JobDefaults `yaml:"defaults"`
	Jobs     []Job       `yaml:"jobs" validate:"dive"`
}

// Default returns the built-in configuration with no jobs.
func Default() Config {
	return Config{
		Runtime: Runtime{
			OutputDir: DefaultOutputDir,
			Workers:   DefaultWorkers,
			LogLevel:  DefaultLogLevel,
			LogFormat: DefaultLogFormat,
		},
		Defaults: JobDefaults{
			Bins:    DefaultBins,
			Samples: DefaultSamples,
			Workers: 1,
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateFRCJob, Job{})
	return v
}

// validateFRCJob requires an angle or a persistence length for "frc" jobs.
func validateFRCJob(sl validator.StructLevel) {
	j := sl.Current().Interface().(Job)
	if j.Model == ModelFRC && j.Angle <= 0 && j.Persistence <= 0 {
		sl.ReportError(j.Angle, "Angle", "angle", "frc_angle", "")
	}
}

// Load reads a YAML job file, applies job defaults and environment
// overrides, and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}
	return Parse(data)
}

// Parse is Load on in-memory YAML.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: yaml: %v", ErrInvalidConfig, err)
	}
	if len(cfg.Jobs) == 0 {
		return Config{}, fmt.Errorf("%w: no jobs", ErrInvalidConfig)
	}
	cfg.applyDefaults()
	if err := ApplyEnv(&cfg.Runtime); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides runtime settings from CHAINSTAT_* variables.
func ApplyEnv(rt *Runtime) error {
	if err := env.ParseWithOptions(rt, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("%w: env: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	for i := range c.Jobs {
		j := &c.Jobs[i]
		if j.Bins == 0 {
			j.Bins = c.Defaults.Bins
		}
		if j.Samples == 0 {
			j.Samples = c.Defaults.Samples
		}
		if j.Workers == 0 {
			j.Workers = c.Defaults.Workers
		}
	}
}

// Validate checks every struct tag and the frc rule.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	seen := make(map[string]bool, len(c.Jobs))
	for _, j := range c.Jobs {
		if seen[j.Name] {
			return fmt.Errorf("%w: duplicate job name %q", ErrInvalidConfig, j.Name)
		}
		seen[j.Name] = true
	}
	return nil
}

// ValidateJob validates a single job, as used by one-shot runs.
func ValidateJob(j Job) error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Theta returns the constraint angle of an frc job.
func (j Job) Theta() vec3.Angle {
	if j.Angle > 0 {
		return vec3.Angle(j.Angle)
	}
	return vec3.Angle(math.Sqrt(2 / (float64(j.Links) * j.Persistence)))
}

// Build constructs the chain model the job describes.
func (j Job) Build() (chain.Model, error) {
	var (
		m   chain.Model
		err error
	)
	switch j.Model {
	case ModelFJC:
		m, err = chain.NewFJC(j.Links)
	case ModelFRC:
		m, err = chain.NewFRC(j.Links, j.Theta())
	case ModelEFJC:
		m, err = chain.NewEFJC(j.Links, j.Stiffness)
	default:
		return nil, fmt.Errorf("job %q: %q: %w", j.Name, j.Model, ErrUnknownModel)
	}
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", j.Name, err)
	}
	return m, nil
}

// Level maps LogLevel to a slog level (info for unknown names).
func (rt Runtime) Level() slog.Level {
	switch strings.ToLower(rt.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger from the runtime settings.
func (rt Runtime) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: rt.Level()}
	if rt.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
