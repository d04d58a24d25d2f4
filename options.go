package mtstat

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Analyzer construction.
type Option func(*options)

// WithLogger sets the logger for the analyzer and every catalog it builds.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// analysis runs. Pass nil to disable metrics collection.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
