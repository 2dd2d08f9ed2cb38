package peakjoin

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/peakjoin/align"
	"github.com/hupe1980/peakjoin/blobstore"
	"github.com/hupe1980/peakjoin/codec"
)

type options struct {
	tolerance        align.Tolerance
	duplicates       align.Duplicates
	codec            codec.Codec
	store            blobstore.Store
	metricsCollector MetricsCollector
	logger           *Logger
	maxConcurrency   int64
	memoryLimit      int64
	ioLimit          int64
}

// Option configures Aligner constructor behavior.
type Option func(*options)

// WithTolerance configures the match tolerance used by Align, Resolve and
// the peak list operations. The zero tolerance matches exact positions only.
//
// Example:
//
//	a := peakjoin.New(peakjoin.WithTolerance(align.Abs(0.01).WithPPM(5)))
func WithTolerance(tol align.Tolerance) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithDuplicates configures how Resolve settles several left elements
// claiming the same right element. Default is align.DuplicatesClosest.
func WithDuplicates(d align.Duplicates) Option {
	return func(o *options) {
		o.duplicates = d
	}
}

// WithCodec configures the codec used for encoding and decoding stored
// results.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithStore configures the blob store backing SaveResult and LoadResult.
// Without a store those operations return ErrNoStore.
//
// Example:
//
//	store := blobstore.NewLocalStore("./results")
//	a := peakjoin.New(peakjoin.WithStore(store))
func WithStore(s blobstore.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &peakjoin.BasicMetricsCollector{}
//	a := peakjoin.New(peakjoin.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
//	fmt.Printf("Alignments: %d, Avg latency: %dns\n", stats.AlignCount, stats.AlignAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := peakjoin.NewJSONLogger(slog.LevelInfo)
//	a := peakjoin.New(peakjoin.WithLogger(logger))
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

// WithMaxConcurrency bounds how many peak list pairs AlignBatch runs at
// once. Defaults to the number of usable CPUs.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxConcurrency = int64(n)
		}
	}
}

// WithMemoryLimit bounds the transient join table memory held by in-flight
// alignments. A pair whose table estimate would exceed the limit fails with
// ErrMemoryLimitExceeded. Zero means tracking only, no limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithIOLimit bounds blob store traffic in bytes per second. Zero means
// unlimited.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.ioLimit = bytesPerSec
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		duplicates:       align.DuplicatesClosest,
		codec:            nil,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		maxConcurrency:   int64(runtime.GOMAXPROCS(0)),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
