// Package config loads lexsort settings from YAML.
package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mdm/lexical-numbers/data"
)

// Output formats accepted by lexsort.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// MaxCount bounds the number of integers a single run may sort.
const MaxCount = 10_000_000

// Config holds lexsort settings.
type Config struct {
	Start   uint64 `yaml:"start"`
	Count   uint64 `yaml:"count"`
	Output  string `yaml:"output"`
	Numeric bool   `yaml:"numeric"`
	Log     Log    `yaml:"log"`
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data.DefaultConfig, cfg); err != nil {
		return nil, errors.Wrap(err, "decode default config")
	}
	return cfg, nil
}

// Load reads the defaults and overlays the file at path, if any.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	return cfg, nil
}

// Validate checks that the settings describe a usable run.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return errors.Errorf("unknown output format %q", c.Output)
	}
	if c.Count > MaxCount {
		return errors.Errorf("count %d exceeds %d", c.Count, MaxCount)
	}
	if c.Count > 0 && c.Start > math.MaxUint64-(c.Count-1) {
		return errors.Errorf("range start %d count %d overflows uint64", c.Start, c.Count)
	}
	return nil
}

// Values returns the integers [Start, Start+Count).
func (c *Config) Values() []uint64 {
	out := make([]uint64, c.Count)
	for i := range out {
		out[i] = c.Start + uint64(i)
	}
	return out
}
