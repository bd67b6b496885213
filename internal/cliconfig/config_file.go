package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Formats       []string `toml:"formats"`
	OutDir        string   `toml:"out_dir"`
	StateDir      string   `toml:"state_dir"`
	LogLevel      string   `toml:"log_level"`
	StrokeColor   string   `toml:"stroke_color"`
	StrokeWidth   float64  `toml:"stroke_width"`
	PageWidth     string   `toml:"page_width"`
	PageHeight    string   `toml:"page_height"`
	PNGWidth      int      `toml:"png_width"`
	PNGHeight     int      `toml:"png_height"`
	GroupLayers   *bool    `toml:"group_layers"`
	StrictStrokes *bool    `toml:"strict_strokes"`
	Debounce      string   `toml:"debounce"`
	RetryInterval string   `toml:"retry_interval"`
	RetryMax      *int     `toml:"retry_max"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.inkship/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".inkship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setStrings("format", fc.Formats, &cfg.Formats)
	s.setString("out-dir", fc.OutDir, &cfg.OutDir)
	s.setString("state-dir", fc.StateDir, &cfg.StateDir)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("stroke-color", fc.StrokeColor, &cfg.StrokeColor)
	s.setString("page-width", fc.PageWidth, &cfg.PageWidth)
	s.setString("page-height", fc.PageHeight, &cfg.PageHeight)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}
	if err := s.setDuration("retry-interval", fc.RetryInterval, &cfg.RetryInterval); err != nil {
		return err
	}

	s.setFloat("stroke-width", fc.StrokeWidth, &cfg.StrokeWidth)

	s.setInt("png-width", fc.PNGWidth, &cfg.PNGWidth)
	s.setInt("png-height", fc.PNGHeight, &cfg.PNGHeight)
	s.setIntPtr("retry-max", fc.RetryMax, &cfg.RetryMax)

	s.setBool("group-layers", fc.GroupLayers, &cfg.GroupLayers)
	s.setBool("strict", fc.StrictStrokes, &cfg.StrictStrokes)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
