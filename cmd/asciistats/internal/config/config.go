// Package config loads the optional asciistats.yaml configuration.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/asciistats/internal/coinflip"
	"github.com/go-drift/asciistats/pkg/clock"
	"github.com/go-drift/asciistats/pkg/errors"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "asciistats.yaml"

// CurrentVersion is the configuration format this build understands.
const CurrentVersion = "v1.0.0"

// Config represents asciistats.yaml.
type Config struct {
	Version     string       `yaml:"version,omitempty"`
	FPS         int          `yaml:"fps,omitempty"`
	Seed        *uint64      `yaml:"seed,omitempty"`
	Batch       int          `yaml:"batch,omitempty"`
	Glyphs      GlyphsConfig `yaml:"glyphs,omitempty"`
	MetricsAddr string       `yaml:"metrics_addr,omitempty"`
}

// GlyphsConfig selects the characters histograms are drawn with.
type GlyphsConfig struct {
	Outcome string `yaml:"outcome,omitempty"`
	Ideal   string `yaml:"ideal,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path        string
	Version     string
	FPS         int
	Seed        uint64
	SeedSet     bool
	Batch       int
	Outcome     string
	Ideal       string
	MetricsAddr string
}

// Options returns the coin-flip options described by r.
func (r *Resolved) Options() coinflip.Options {
	return coinflip.Options{
		Seed:         r.Seed,
		Batch:        r.Batch,
		OutcomeGlyph: r.Outcome,
		IdealGlyph:   r.Ideal,
		FPS:          r.FPS,
	}
}

// LoadOptional reads path if present. A missing file yields an empty config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.E("config.Load", errors.KindConfig, fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// Parse decodes a configuration document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.E("config.Parse", errors.KindConfig, fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return &cfg, nil
}

// Resolve loads the configuration at path (or FileName in dir when path is
// empty) and applies defaults.
func Resolve(dir, path string) (*Resolved, error) {
	if path == "" {
		path = filepath.Join(dir, FileName)
	}
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(path)
}

// Resolve validates c and fills in defaults.
func (c *Config) Resolve(path string) (*Resolved, error) {
	version := strings.TrimSpace(c.Version)
	if version == "" {
		version = CurrentVersion
	}
	if err := validateVersion(version); err != nil {
		return nil, errors.E("config.Resolve", errors.KindConfig, err)
	}
	if c.FPS < 0 {
		return nil, errors.E("config.Resolve", errors.KindConfig, fmt.Errorf("fps must not be negative (got %d)", c.FPS))
	}
	if c.Batch < 0 {
		return nil, errors.E("config.Resolve", errors.KindConfig, fmt.Errorf("batch must not be negative (got %d)", c.Batch))
	}

	r := &Resolved{
		Path:        path,
		Version:     version,
		FPS:         clock.Rate(c.FPS),
		Batch:       c.Batch,
		Outcome:     glyph(c.Glyphs.Outcome, coinflip.DefaultOutcomeGlyph),
		Ideal:       glyph(c.Glyphs.Ideal, coinflip.DefaultIdealGlyph),
		MetricsAddr: strings.TrimSpace(c.MetricsAddr),
	}
	if r.Batch == 0 {
		r.Batch = coinflip.DefaultBatch
	}
	if c.Seed != nil {
		r.Seed, r.SeedSet = *c.Seed, true
	}
	return r, nil
}

func glyph(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func validateVersion(version string) error {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("version must be a semantic version (got %q)", version)
	}
	if semver.Major(version) != semver.Major(CurrentVersion) {
		return fmt.Errorf("unsupported config version %s (this build reads %s.x)", version, semver.Major(CurrentVersion))
	}
	return nil
}
