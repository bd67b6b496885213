package wpi

import "github.com/inkship/inkship/pkg/log"

// Option configures optional behavior of a Decoder.
type Option func(*options)

type options struct {
	logger      log.Logger
	diagnostics Diagnostics
	idlePoints  IdlePointPolicy
}

func defaultOptions() options {
	return options{
		logger:      log.NewNoopLogger(),
		diagnostics: nopDiagnostics{},
		idlePoints:  IdlePointsKeep,
	}
}

// WithLogger sets the logger used for pass-level messages and block
// positions. If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDiagnostics sets the sink that observes every decoded event.
func WithDiagnostics(d Diagnostics) Option {
	return func(o *options) {
		if d != nil {
			o.diagnostics = d
		}
	}
}

// WithIdlePoints sets what happens to points seen outside a stroke.
// The default, IdlePointsKeep, buffers them.
func WithIdlePoints(policy IdlePointPolicy) Option {
	return func(o *options) {
		o.idlePoints = policy
	}
}
