// SPDX-License-Identifier: EPL-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a config path that is neither TOML nor
// YAML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Pipeline holds the transcription settings.
type Pipeline struct {
	BinSize int `toml:"bin_size" yaml:"bin_size" default:"2048" validate:"gte=1"`
	// Gain of 0 is treated as unset and falls back to 1.
	Gain float64 `toml:"gain" yaml:"gain" default:"1"`
	// Faces lists one face per channel. Empty picks L, R, F, B, U, D in
	// channel order.
	Faces       []string `toml:"faces" yaml:"faces" validate:"max=6,dive,oneof=L R F B U D"`
	Rescale     bool     `toml:"rescale" yaml:"rescale"`
	RescaleFlat string   `toml:"rescale_flat" yaml:"rescale_flat" default:"fail" validate:"oneof=fail zero"`
	Tail        string   `toml:"tail" yaml:"tail" default:"drop" validate:"oneof=drop close"`
	Mixdown     bool     `toml:"mixdown" yaml:"mixdown"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level" yaml:"level" default:"info" validate:"oneof=trace debug info warn error disabled"`
	Format string `toml:"format" yaml:"format" default:"console" validate:"oneof=console json"`
}

// Config is the cubenote configuration file.
type Config struct {
	Pipeline Pipeline `toml:"pipeline" yaml:"pipeline"`
	Logging  Logging  `toml:"logging" yaml:"logging"`
}

// Default returns a Config populated from the default struct tags.
func Default() Config {
	var cfg Config
	// Set only fails for non-pointer input.
	_ = defaults.Set(&cfg)
	return cfg
}

// Load reads the file at path, choosing TOML or YAML by extension, and
// returns it normalized and validated. Fields missing from the file keep
// their defaults. An empty path returns Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := decode(f, formatOf(path), &cfg); err != nil {
		return nil, err
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Parse decodes data in the given format ("toml" or "yaml") on top of the
// defaults.
func Parse(data []byte, format string) (*Config, error) {
	cfg := Default()
	if err := decode(bytes.NewReader(data), format, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Encode writes cfg in the given format.
func (c *Config) Encode(w io.Writer, format string) error {
	switch format {
	case "toml":
		enc := toml.NewEncoder(w)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

func (c *Config) finish() error {
	// A key present but empty in the file must still get its default.
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("config defaults: %w", err)
	}
	c.normalize()
	return c.Validate()
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return strings.TrimPrefix(filepath.Ext(path), ".")
	}
}

func decode(r io.Reader, format string, cfg *Config) error {
	switch format {
	case "toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	case "yaml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parse config: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}
