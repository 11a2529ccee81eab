package vecslice

import (
	"log/slog"

	"github.com/hupe1980/vecslice/location"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	resolveOptions   []func(*location.Options)
}

// Option configures constructor behavior.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResolveOptions configures default resolution behavior applied to every
// Resolve, Slice, and Assign call.
//
// Example:
//
//	vs := vecslice.New[float64](nil, vecslice.WithResolveOptions(func(o *location.Options) {
//	    o.ConvertNegative = false
//	}))
func WithResolveOptions(optFns ...func(*location.Options)) Option {
	return func(o *options) {
		o.resolveOptions = append(o.resolveOptions, optFns...)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
