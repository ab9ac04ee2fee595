package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"archdrift/internal/core/errors"
)

// Decode overlays TOML settings from r onto the defaults. Sections omitted
// from the document keep their default values.
func Decode(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationError, "read config")
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationError, "decode config")
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and decodes a TOML config file. This is a host-side convenience;
// the analysis engine itself never touches the filesystem.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// applyDefaults restores defaults for fields a partial TOML document may have
// zeroed out (toml.Decode overwrites whole slices and maps it finds).
func applyDefaults(cfg *Config) {
	if len(cfg.Classifier.Rules) == 0 {
		cfg.Classifier.Rules = defaultClassifierRules()
	}
	if len(cfg.God.ResponsibilityVerbs) == 0 {
		cfg.God.ResponsibilityVerbs = Default().God.ResponsibilityVerbs
	}
	if cfg.Aggregation.Weights == nil {
		cfg.Aggregation.Weights = Default().Aggregation.Weights
	}
	if cfg.Cycles.MaxCycles == 0 {
		cfg.Cycles.MaxCycles = Default().Cycles.MaxCycles
	}
}
