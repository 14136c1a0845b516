// Package config loads optional YAML-backed defaults for the driver
// CLIs. CLI flags always override a loaded file; a missing file is not
// an error, since every setting also has a flag-level default.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config mirrors the flag surface of cmd/mapfhet-solve and friends:
// --input, --output, --duration, plus worker count and the buy-strategy
// toggle. Grounded on pthm-soup's and katalvlaran-lvlath's shared use of
// yaml.v3 for config-shaped structs.
type Config struct {
	Input      string `yaml:"input"`
	Output     string `yaml:"output"`
	DurationMS int    `yaml:"duration_ms"`
	Workers    int    `yaml:"workers"`
	Buy        bool   `yaml:"buy"`
}

// Default returns the built-in defaults used when no file is loaded.
func Default() Config {
	return Config{DurationMS: 300, Buy: false}
}

// Load reads a mapfhet.yaml-shaped file at path, merging it over
// Default(). A missing file returns Default() with no error; a present
// but malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, errors.Wrapf(err, "config: reading %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}
