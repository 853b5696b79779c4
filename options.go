package knngo

import (
	"log/slog"
)

type options struct {
	logger      *Logger
	parallelism int
}

// Option configures Classifier construction behavior.
//
// Options exist to avoid exploding the constructor surface; the zero
// configuration (no logging, sequential batches) is always valid.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := knngo.NewJSONLogger(slog.LevelInfo)
//	clf, _ := knngo.New(vectors, labels, 5, knngo.WithLogger(logger))
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

// WithParallelism configures the number of goroutines used by PredictBatch.
// Queries are independent, so batches scale near-linearly until the scan
// becomes memory-bound.
//
// If n <= 1, batches run sequentially (default).
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:      NoopLogger(),
		parallelism: 1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
