package cubeplan

import "runtime"

// Options holds the scheduler's ambient configuration. The planning
// semantics themselves are driven entirely by the Descriptor.
type Options struct {
	// Logger receives structured build and query logs.
	Logger *Logger

	// Metrics observes build and best-match events.
	Metrics MetricsObserver

	// Parallelism bounds the number of concurrent resolutions in
	// BestMatchBatch. Zero or negative selects GOMAXPROCS.
	Parallelism int
}

// DefaultOptions returns the default scheduler options.
func DefaultOptions() Options {
	return Options{
		Logger:      NoopLogger(),
		Metrics:     &NoopMetricsObserver{},
		Parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger used by the scheduler.
func WithLogger(logger *Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMetrics sets the metrics observer used by the scheduler.
func WithMetrics(metrics MetricsObserver) func(*Options) {
	return func(o *Options) {
		o.Metrics = metrics
	}
}

// WithParallelism bounds the number of concurrent resolutions in
// BestMatchBatch.
func WithParallelism(n int) func(*Options) {
	return func(o *Options) {
		o.Parallelism = n
	}
}
