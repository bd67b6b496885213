package cliconfig

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/inkship/inkship/pkg/log"
)

// NewLogger returns the console logger used by the CLI at cfg's level.
func NewLogger(w io.Writer, cfg Config) (zerolog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return zerolog.Nop(), err
	}
	return log.NewConsoleLogger(w, lvl), nil
}
