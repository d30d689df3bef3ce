// Package config loads the optional inspector.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by Resolve.
const FileName = "inspector.yaml"

// SupportedMajor is the configuration format major version this build reads.
const SupportedMajor = "v1"

// Config represents the optional inspector.yaml configuration.
type Config struct {
	Version string        `yaml:"version,omitempty"`
	Debug   *bool         `yaml:"debug,omitempty"`
	Log     LogConfig     `yaml:"log"`
	Field   FieldConfig   `yaml:"field"`
	List    ListConfig    `yaml:"list"`
	Preview PreviewConfig `yaml:"preview"`
}

// LogConfig contains diagnostic output settings.
type LogConfig struct {
	Verbose bool   `yaml:"verbose,omitempty"`
	Color   string `yaml:"color,omitempty"`
}

// FieldConfig contains default field options.
type FieldConfig struct {
	DelayInput bool `yaml:"delayInput,omitempty"`
}

// ListConfig contains default list view options.
type ListConfig struct {
	Reorderable *bool `yaml:"reorderable,omitempty"`
}

// PreviewConfig contains preview image sizes for rich values.
type PreviewConfig struct {
	GradientWidth int `yaml:"gradientWidth,omitempty"`
	CurveWidth    int `yaml:"curveWidth,omitempty"`
	CurveHeight   int `yaml:"curveHeight,omitempty"`
	DisplayWidth  int `yaml:"displayWidth,omitempty"`
	DisplayHeight int `yaml:"displayHeight,omitempty"`
}

// Resolved contains configuration values with defaults applied.
type Resolved struct {
	Root          string
	Version       string
	Debug         bool
	Verbose       bool
	Color         string
	DelayInput    bool
	Reorderable   bool
	GradientWidth int
	CurveWidth    int
	CurveHeight   int
	DisplayWidth  int
	DisplayHeight int
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Resolved {
	return &Resolved{
		Version:       SupportedMajor,
		Debug:         true,
		Color:         "auto",
		Reorderable:   true,
		GradientWidth: 256,
		CurveWidth:    256,
		CurveHeight:   32,
		DisplayWidth:  300,
		DisplayHeight: 50,
	}
}

// LoadOptional reads inspector.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads inspector.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	r, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	r.Root = dir
	return r, nil
}

// Resolve applies defaults and validates the configuration.
func (c *Config) Resolve() (*Resolved, error) {
	r := Defaults()

	version := strings.TrimSpace(c.Version)
	if version != "" {
		if err := validateVersion(version); err != nil {
			return nil, err
		}
		r.Version = version
	}

	if c.Debug != nil {
		r.Debug = *c.Debug
	}
	r.Verbose = c.Log.Verbose

	color := strings.ToLower(strings.TrimSpace(c.Log.Color))
	switch color {
	case "":
	case "auto", "always", "never":
		r.Color = color
	default:
		return nil, fmt.Errorf("log.color must be auto, always or never (got %q)", c.Log.Color)
	}

	r.DelayInput = c.Field.DelayInput
	if c.List.Reorderable != nil {
		r.Reorderable = *c.List.Reorderable
	}

	sizes := []struct {
		name string
		src  int
		dst  *int
	}{
		{"preview.gradientWidth", c.Preview.GradientWidth, &r.GradientWidth},
		{"preview.curveWidth", c.Preview.CurveWidth, &r.CurveWidth},
		{"preview.curveHeight", c.Preview.CurveHeight, &r.CurveHeight},
		{"preview.displayWidth", c.Preview.DisplayWidth, &r.DisplayWidth},
		{"preview.displayHeight", c.Preview.DisplayHeight, &r.DisplayHeight},
	}
	for _, s := range sizes {
		if s.src < 0 {
			return nil, fmt.Errorf("%s cannot be negative (got %d)", s.name, s.src)
		}
		if s.src > 0 {
			*s.dst = s.src
		}
	}

	return r, nil
}

func validateVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a valid semantic version", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("version %q is not supported (want %s.x)", v, SupportedMajor)
	}
	return nil
}
