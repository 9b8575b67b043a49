// Package config provides YAML configuration for table layout
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/young1lin/tabfit/internal/version"
	"github.com/young1lin/tabfit/table"
)

// ErrInvalidOption is returned for a config value outside its allowed range
var ErrInvalidOption = errors.New("invalid option")

// Config represents the layout configuration
type Config struct {
	// Requires is a version constraint the binary must satisfy
	Requires string `yaml:"requires"`
	// Width is the total width budget, 0 to detect it
	Width           int            `yaml:"width"`
	BorderStyle     string         `yaml:"border_style"`
	HeaderSeparator bool           `yaml:"show_header_separator"`
	SeparateRows    bool           `yaml:"separate_rows"`
	Padding         int            `yaml:"cell_padding"`
	DefaultAlign    string         `yaml:"default_alignment"`
	TopBorder       bool           `yaml:"top_border"`
	BottomBorder    bool           `yaml:"bottom_border"`
	Stretch         bool           `yaml:"stretch"`
	Columns         []ColumnConfig `yaml:"columns"`

	// Path is the file the config was read from, empty for defaults
	Path string `yaml:"-"`
}

// ColumnConfig constrains one column
type ColumnConfig struct {
	Width int    `yaml:"width"`
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
	Align string `yaml:"align"`
	Grow  *bool  `yaml:"grow"` // nil means true
}

// Load loads configuration with priority:
// 1. Project-level: <projectDir>/.tabfit.yaml
// 2. Global: <user config dir>/tabfit/config.yaml
// 3. Default: built-in defaults
func Load(projectDir string) (*Config, error) {
	return LoadWithPlatform(projectDir, DefaultPlatform)
}

// LoadWithPlatform allows injecting a custom platform provider for testing
func LoadWithPlatform(projectDir string, platform PlatformProvider) (*Config, error) {
	if projectDir == "" {
		wd, err := platform.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		projectDir = wd
	}

	projectConfig := filepath.Join(projectDir, ProjectFile)
	if info, err := os.Stat(projectConfig); err == nil && !info.IsDir() {
		return LoadFile(projectConfig)
	}

	if globalConfig := GlobalConfigPath(platform); globalConfig != "" {
		if info, err := os.Stat(globalConfig); err == nil && !info.IsDir() {
			return LoadFile(globalConfig)
		}
	}

	return DefaultConfig(), nil
}

// LoadFile loads configuration from a specific YAML or JSON file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BorderStyle:     "extended",
		HeaderSeparator: true,
		Padding:         1,
		DefaultAlign:    "left",
		TopBorder:       true,
		BottomBorder:    true,
	}
}

// Validate rejects values that cannot be rendered. Nothing is coerced.
func (c *Config) Validate() error {
	if err := version.Satisfies(c.Requires); err != nil {
		return err
	}
	if c.Width < 0 {
		return fmt.Errorf("%w: width %d is negative", ErrInvalidOption, c.Width)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: cell_padding %d is negative", ErrInvalidOption, c.Padding)
	}
	_, _, err := c.TableOptions()
	return err
}

// TableOptions converts the configuration into table options and column specs
func (c *Config) TableOptions() (table.Options, []table.ColumnSpec, error) {
	style, err := table.ParseBorderStyle(c.BorderStyle)
	if err != nil {
		return table.Options{}, nil, fmt.Errorf("%w: border_style: %w", ErrInvalidOption, err)
	}
	align, err := table.ParseAlign(c.DefaultAlign)
	if err != nil {
		return table.Options{}, nil, fmt.Errorf("%w: default_alignment: %w", ErrInvalidOption, err)
	}

	opts := table.Options{
		BorderStyle:     style,
		Padding:         c.Padding,
		DefaultAlign:    align,
		HeaderSeparator: c.HeaderSeparator,
		SeparateRows:    c.SeparateRows,
		TopBorder:       c.TopBorder,
		BottomBorder:    c.BottomBorder,
		Stretch:         c.Stretch,
	}

	var specs []table.ColumnSpec
	for i, col := range c.Columns {
		spec, err := col.spec()
		if err != nil {
			return table.Options{}, nil, fmt.Errorf("%w: column %d: %w", ErrInvalidOption, i, err)
		}
		specs = append(specs, spec)
	}
	return opts, specs, nil
}

func (c ColumnConfig) spec() (table.ColumnSpec, error) {
	if c.Width < 0 || c.Min < 0 || c.Max < 0 {
		return table.ColumnSpec{}, errors.New("widths must not be negative")
	}
	if c.Max > 0 && c.Min > c.Max {
		return table.ColumnSpec{}, fmt.Errorf("min %d is larger than max %d", c.Min, c.Max)
	}
	align, err := table.ParseAlign(c.Align)
	if err != nil {
		return table.ColumnSpec{}, err
	}
	return table.ColumnSpec{
		Width:    c.Width,
		MinWidth: c.Min,
		MaxWidth: c.Max,
		Align:    align,
		NoGrow:   c.Grow != nil && !*c.Grow,
	}, nil
}
