// Package config loads run defaults for the khist CLI from an optional
// YAML file. Flags given on the command line override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the histogram run parameters.
type Config struct {
	Low     uint64 `yaml:"low"`     // Low count bound of the histogram
	High    uint64 `yaml:"high"`    // High count bound of the histogram
	Inc     uint64 `yaml:"inc"`     // Increment for each bin
	Threads int    `yaml:"threads"` // Number of scan workers
	Output  string `yaml:"output"`  // Path prefix for generated files
}

// Default returns the parameters used when neither a config file nor a
// flag supplies a value.
func Default() Config {
	return Config{
		Low:     1,
		High:    10000,
		Inc:     1,
		Threads: 1,
		Output:  "khist",
	}
}

// Load reads a YAML config file and overlays it on the defaults.
// Values are validated eagerly so a bad file fails before any work
// starts.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the parameters that must hold regardless of where
// they came from.
func (c Config) Validate() error {
	if c.High < c.Low {
		return fmt.Errorf("config: high (%d) must be >= low (%d)", c.High, c.Low)
	}
	if c.Inc == 0 {
		return fmt.Errorf("config: inc must be > 0")
	}
	if c.Threads < 1 {
		return fmt.Errorf("config: threads must be >= 1, got %d", c.Threads)
	}
	if c.Output == "" {
		return fmt.Errorf("config: output prefix must not be empty")
	}
	return nil
}
