// Package config loads the vgdemangle command-line configuration from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/skdltmxn/vgdemangle/demangle"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration file.
type Config struct {
	Demangle DemangleConfig `toml:"demangle"`
	Log      LogConfig      `toml:"log"`
}

// DemangleConfig selects the pipeline stages and their behaviour.
type DemangleConfig struct {
	Enabled         bool   `toml:"enabled"`
	CXX             bool   `toml:"cxx"`
	Z               bool   `toml:"z"`
	Params          bool   `toml:"params"`
	ForbiddenPrefix string `toml:"forbidden_prefix"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Demangle: DemangleConfig{
			Enabled:         true,
			CXX:             true,
			Z:               true,
			Params:          true,
			ForbiddenPrefix: demangle.PolicyFatal.String(),
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML content on top of the defaults. Unknown keys are
// rejected.
func Parse(content []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Policy returns the forbidden-prefix policy.
func (c *Config) Policy() (demangle.Policy, error) {
	return demangle.ParsePolicy(c.Demangle.ForbiddenPrefix)
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Log.Level)
}

// Options converts the configuration into Demangler options.
func (c *Config) Options() ([]demangle.Option, error) {
	policy, err := c.Policy()
	if err != nil {
		return nil, err
	}
	return []demangle.Option{
		demangle.WithForbiddenPrefixPolicy(policy),
		demangle.WithCXXFlags(demangle.CXXFlags{ANSI: true, Params: c.Demangle.Params}),
		demangle.WithDemangling(c.Demangle.Enabled),
	}, nil
}
