// Package config loads settings for the fraction console.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/govalues/decimal"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidPrecision  = errors.New("invalid precision")
)

// Config holds console settings.
// Precision is the number of decimal places printed for each value;
// -1 prints the shortest float64 representation instead.
type Config struct {
	Precision int    `toml:"precision" yaml:"precision"`
	Wait      bool   `toml:"wait" yaml:"wait"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
	Debug     bool   `toml:"debug" yaml:"debug"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Precision: -1,
		Wait:      true,
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file on top of [Default].
// Keys missing from the file keep their default values.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &c)
	default:
		err = fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks that settings are within range.
func (c Config) Validate() error {
	if c.Precision < -1 || c.Precision > decimal.MaxScale {
		return fmt.Errorf("%w: %d is out of range [-1, %d]", ErrInvalidPrecision, c.Precision, decimal.MaxScale)
	}
	return nil
}
