// Package config loads mdview settings from a YAML file.
//
// Files are decoded in two steps: YAML into a generic map, then the map
// into Config with mapstructure, so durations may be written as "5s" or
// "1500ms" and extensions as a list or a comma-separated string.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/fwojciec/mdview"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file read when no path is given.
const DefaultFile = "mdview.yaml"

// Config holds the settings shared by the mdview commands.
type Config struct {
	BaseURL     string        `mapstructure:"base_url"`
	ContainerID string        `mapstructure:"container_id"`
	ScriptID    string        `mapstructure:"script_id"`
	DefaultPath string        `mapstructure:"default_path"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Extensions  []string      `mapstructure:"extensions"`
	FrontMatter bool          `mapstructure:"front_matter"`
	Width       int           `mapstructure:"width"`
	LogLevel    string        `mapstructure:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ContainerID: mdview.DefaultContainerID,
		ScriptID:    mdview.DefaultScriptID,
		DefaultPath: mdview.DefaultPath,
		Timeout:     mdview.DefaultReadyTimeout,
		Width:       80,
		LogLevel:    "info",
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error when path is DefaultFile or empty.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != "" && path != DefaultFile
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.ContainerID == "":
		return errors.New("config: container_id must not be empty")
	case c.ScriptID == "":
		return errors.New("config: script_id must not be empty")
	case c.Timeout <= 0:
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	case c.Width < 0:
		return fmt.Errorf("config: width must not be negative, got %d", c.Width)
	case c.DefaultPath == "":
		return errors.New("config: default_path must not be empty")
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("config: base_url: %w", err)
		}
		if !u.IsAbs() {
			return fmt.Errorf("config: base_url must be absolute, got %q", c.BaseURL)
		}
	}
	if !mdview.ValidPath(c.DefaultPath) {
		return fmt.Errorf("config: default_path %q is not allowed", c.DefaultPath)
	}
	return nil
}
