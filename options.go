package alignstat

import (
	"log/slog"

	"github.com/hupe1980/alignstat/calibration"
)

type options struct {
	scheme           *calibration.Scheme
	cal              *calibration.Calibration
	k                *float64
	lambda           *float64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Statistics construction.
//
// Options exist to keep the constructor surface small: calibration selection,
// individual constant overrides, logging and metrics all funnel through the
// same New call.
type Option func(*options)

// WithScheme selects a named calibration preset.
//
// Example:
//
//	stats, err := alignstat.New(n, alignstat.WithScheme(calibration.SchemeGapped))
func WithScheme(s calibration.Scheme) Option {
	return func(o *options) {
		o.scheme = &s
	}
}

// WithCalibration supplies an explicit calibration, replacing the preset.
// Use this when scores were produced under a scoring scheme that has its own
// fitted (K, lambda) pair.
func WithCalibration(c calibration.Calibration) Option {
	return func(o *options) {
		o.cal = &c
	}
}

// WithK overrides the K constant of the selected calibration.
// K must be a positive finite number or New fails.
func WithK(k float64) Option {
	return func(o *options) {
		o.k = &k
	}
}

// WithLambda overrides the lambda constant of the selected calibration.
// Lambda must be a positive finite number or New fails.
func WithLambda(lambda float64) Option {
	return func(o *options) {
		o.lambda = &lambda
	}
}

// WithMetricsCollector configures a metrics collector for monitoring scoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &alignstat.BasicMetricsCollector{}
//	stats, _ := alignstat.New(n, alignstat.WithMetricsCollector(metrics))
//	// ... score alignments ...
//	snapshot := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := alignstat.NewJSONLogger(slog.LevelInfo)
//	stats, _ := alignstat.New(n, alignstat.WithLogger(logger))
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
