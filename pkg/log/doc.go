// Package log provides a logging abstraction for inkship components.
//
// The decoder and the converters never write to a global logger. Callers pass
// a Logger explicitly; when none is given a no-op logger is used.
//
// # Usage
//
// Wrap an existing zerolog logger:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//
// Or discard everything in tests:
//
//	logger := log.NewNoopLogger()
//
// # Levels
//
// Trace is reserved for per-block stream positions and skipped blocks, which
// are very chatty on real captures. Debug carries decoded events, Info the
// start and end of a pass, Warn anything unexpected that did not abort it.
package log
