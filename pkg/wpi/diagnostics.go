package wpi

import "github.com/inkship/inkship/pkg/log"

// Diagnostics receives every decoded event with the offset of its block. A
// point discarded under IdlePointsDrop is followed by a PointDropped at the
// same offset. It has no influence on decoding.
type Diagnostics interface {
	Observe(offset int64, ev Event)
}

// DiagnosticsFunc adapts a function to Diagnostics.
type DiagnosticsFunc func(offset int64, ev Event)

// Observe calls f.
func (f DiagnosticsFunc) Observe(offset int64, ev Event) {
	f(offset, ev)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Observe(int64, Event) {}

// LogDiagnostics writes events to logger. Skipped blocks go to trace, all
// other events to debug.
func LogDiagnostics(logger log.Logger) Diagnostics {
	return logDiagnostics{logger: logger}
}

type logDiagnostics struct {
	logger log.Logger
}

func (d logDiagnostics) Observe(offset int64, ev Event) {
	pos := log.Hex("offset", offset)
	switch e := ev.(type) {
	case StrokeStart:
		d.logger.Debug("stroke", pos, log.String("type", "start"))
	case StrokeLayer:
		d.logger.Debug("stroke", pos, log.String("type", "layer"), log.Int("code", int(e.Code)))
	case StrokeEnd:
		d.logger.Debug("stroke", pos, log.String("type", "end"))
	case PointObserved:
		d.logger.Debug("xy", pos, log.Float64("x", e.Point.X), log.Float64("y", e.Point.Y))
	case PointDropped:
		d.logger.Debug("xy dropped", pos, log.Float64("x", e.Point.X), log.Float64("y", e.Point.Y))
	case PressureObserved:
		d.logger.Debug("pressure", pos, log.Int("pressure", int(e.Pressure)))
	case TiltObserved:
		d.logger.Debug("tilt", pos, log.Int("x", int(e.X)), log.Int("y", int(e.Y)))
	case Skipped:
		d.logger.Trace("skipped block", pos, log.String("descriptor", e.Descriptor.String()), log.Int("length", e.Length))
	}
}
