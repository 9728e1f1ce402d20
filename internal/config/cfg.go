// Package config holds the configuration of the doctree command line tool.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/npillmayer/doctree/dom"
	"github.com/npillmayer/doctree/dom/style/media"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	MediaConfig struct {
		Type         string `yaml:"type" validate:"required,oneof=all screen print speech"`
		Width        int    `yaml:"width" validate:"min=1"`
		Height       int    `yaml:"height" validate:"min=1"`
		DeviceWidth  int    `yaml:"device_width" validate:"gte=0"`
		DeviceHeight int    `yaml:"device_height" validate:"gte=0"`
		Color        int    `yaml:"color" validate:"gte=0"`
		Resolution   int    `yaml:"resolution" validate:"min=1"`
	}

	LocaleConfig struct {
		Language string `yaml:"language" validate:"required"`
		Culture  string `yaml:"culture"`
	}

	StylesConfig struct {
		UserStylesheet string  `yaml:"user_stylesheet" validate:"omitempty,filepath"`
		FontSize       float64 `yaml:"font_size" validate:"gt=0"`
	}

	LimitsConfig struct {
		MaxDepth          int `yaml:"max_depth" validate:"min=1"`
		MaxStylesheetSize int `yaml:"max_stylesheet_size" validate:"min=1"`
		MaxImportDepth    int `yaml:"max_import_depth" validate:"gte=0"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Media   MediaConfig   `yaml:"media"`
		Locale  LocaleConfig  `yaml:"locale"`
		Styles  StylesConfig  `yaml:"styles"`
		Limits  LimitsConfig  `yaml:"limits"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, validate bool) (*Config, error) {
	// only fields defined above are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if validate {
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the expanded configuration template
// and validates the result. An empty path yields the defaults.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0
	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}
	if data, err = os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if cfg, err = unmarshalConfig(data, cfg, true); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare expands the configuration template and returns it.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump returns the YAML representation of a configuration.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

// Features returns the configured media features.
func (c *Config) Features() media.Features {
	return media.Features{
		Type:         c.Media.Type,
		Width:        c.Media.Width,
		Height:       c.Media.Height,
		DeviceWidth:  c.Media.DeviceWidth,
		DeviceHeight: c.Media.DeviceHeight,
		Color:        c.Media.Color,
		Resolution:   c.Media.Resolution,
	}
}

// Options returns document creation options for the configured limits
// and user stylesheet, which is read from disk.
func (c *Config) Options() ([]dom.Option, error) {
	opts := []dom.Option{
		dom.WithMaxDepth(c.Limits.MaxDepth),
		dom.WithMaxStylesheetSize(c.Limits.MaxStylesheetSize),
		dom.WithMaxImportDepth(c.Limits.MaxImportDepth),
	}
	if c.Styles.UserStylesheet != "" {
		css, err := os.ReadFile(c.Styles.UserStylesheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read user stylesheet: %w", err)
		}
		opts = append(opts, dom.WithUserStyles(string(css)))
	}
	return opts, nil
}

// FontSize returns the configured default font size.
func (c *Config) FontSize() dimen.DU {
	return dimen.DU(c.Styles.FontSize * float64(dimen.BP))
}
