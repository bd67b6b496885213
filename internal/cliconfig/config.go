package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkship/inkship/pkg/render"
)

// Config holds CLI configuration for inkship.
type Config struct {
	Formats  []string
	OutDir   string
	StateDir string
	LogLevel string

	StrokeColor string
	StrokeWidth float64
	PageWidth   string
	PageHeight  string
	PNGWidth    int
	PNGHeight   int
	GroupLayers bool

	// StrictStrokes drops points that arrive outside a stroke.
	StrictStrokes bool

	Debounce      time.Duration
	RetryInterval time.Duration
	RetryMax      int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	ro := render.DefaultOptions()
	return Config{
		Formats:       []string{string(render.FormatSVG)},
		LogLevel:      "info",
		StrokeColor:   ro.StrokeColor,
		StrokeWidth:   ro.StrokeWidth,
		PageWidth:     ro.PageWidth,
		PageHeight:    ro.PageHeight,
		PNGWidth:      ro.PNGWidth,
		PNGHeight:     ro.PNGHeight,
		GroupLayers:   ro.GroupLayers,
		Debounce:      500 * time.Millisecond,
		RetryInterval: time.Second,
		RetryMax:      5,
	}
}

// Validate checks the configuration for errors and normalizes values.
func (c *Config) Validate() error {
	if len(c.Formats) == 0 {
		return fmt.Errorf("at least one output format is required")
	}
	seen := make(map[render.Format]bool, len(c.Formats))
	formats := c.Formats[:0]
	for _, s := range c.Formats {
		f, err := render.ParseFormat(s)
		if err != nil {
			return err
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, string(f))
	}
	c.Formats = formats

	if _, err := c.Level(); err != nil {
		return err
	}

	if c.StrokeWidth <= 0 {
		return fmt.Errorf("stroke width must be positive")
	}
	if c.PNGWidth <= 0 || c.PNGHeight <= 0 {
		return fmt.Errorf("png size must be positive")
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	if c.RetryInterval <= 0 {
		return fmt.Errorf("retry interval must be positive")
	}
	if c.RetryMax < 0 {
		return fmt.Errorf("retry max must not be negative")
	}
	return nil
}

// Level parses LogLevel. An empty level means info.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// RenderFormats returns the configured formats. Call Validate first.
func (c *Config) RenderFormats() []render.Format {
	out := make([]render.Format, 0, len(c.Formats))
	for _, s := range c.Formats {
		out = append(out, render.Format(s))
	}
	return out
}

// RenderOptions returns the renderer settings.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		PageWidth:   c.PageWidth,
		PageHeight:  c.PageHeight,
		StrokeColor: c.StrokeColor,
		StrokeWidth: c.StrokeWidth,
		PNGWidth:    c.PNGWidth,
		PNGHeight:   c.PNGHeight,
		GroupLayers: c.GroupLayers,
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list value if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets an int value from a pointer if not nil and flag not changed.
// Used where zero is meaningful.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination.
// Used for environment variables that come as strings; Validate rejects
// out-of-range values.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
