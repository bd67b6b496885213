package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (INKSHIP_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setStrings("format", splitList(os.Getenv("INKSHIP_FORMATS")), &cfg.Formats)
	s.setString("out-dir", os.Getenv("INKSHIP_OUT_DIR"), &cfg.OutDir)
	s.setString("state-dir", os.Getenv("INKSHIP_STATE_DIR"), &cfg.StateDir)
	s.setString("log-level", os.Getenv("INKSHIP_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("stroke-color", os.Getenv("INKSHIP_STROKE_COLOR"), &cfg.StrokeColor)
	s.setString("page-width", os.Getenv("INKSHIP_PAGE_WIDTH"), &cfg.PageWidth)
	s.setString("page-height", os.Getenv("INKSHIP_PAGE_HEIGHT"), &cfg.PageHeight)

	if err := s.setDuration("debounce", os.Getenv("INKSHIP_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}
	if err := s.setDuration("retry-interval", os.Getenv("INKSHIP_RETRY_INTERVAL"), &cfg.RetryInterval); err != nil {
		return err
	}

	if err := s.setFloatFromString("stroke-width", os.Getenv("INKSHIP_STROKE_WIDTH"), &cfg.StrokeWidth); err != nil {
		return err
	}

	if err := s.setIntFromString("png-width", os.Getenv("INKSHIP_PNG_WIDTH"), &cfg.PNGWidth); err != nil {
		return err
	}
	if err := s.setIntFromString("png-height", os.Getenv("INKSHIP_PNG_HEIGHT"), &cfg.PNGHeight); err != nil {
		return err
	}
	if err := s.setIntFromString("retry-max", os.Getenv("INKSHIP_RETRY_MAX"), &cfg.RetryMax); err != nil {
		return err
	}

	s.setBoolFromString("group-layers", os.Getenv("INKSHIP_GROUP_LAYERS"), &cfg.GroupLayers)
	s.setBoolFromString("strict", os.Getenv("INKSHIP_STRICT_STROKES"), &cfg.StrictStrokes)

	return nil
}
