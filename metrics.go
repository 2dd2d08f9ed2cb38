package peakjoin

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    alignCounter   prometheus.Counter
//	    alignHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordAlign(kind string, rows, matched int, duration time.Duration, err error) {
//	    p.alignCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordAlign is called after each alignment. rows is the number of
	// table rows emitted, matched the fully matched rows among them,
	// duration the total time taken. err is nil if successful.
	RecordAlign(kind string, rows, matched int, duration time.Duration, err error)

	// RecordResolve is called after each duplicate resolution pass.
	// queries is the number of left elements, matched how many resolved to
	// a right element.
	RecordResolve(queries, matched int, duration time.Duration, err error)

	// RecordBatch is called after each batch alignment. pairs is the number
	// of pairs attempted, failed the number that did not produce a result.
	RecordBatch(pairs, failed int, duration time.Duration)

	// RecordSave is called after each result save. bytes is the encoded
	// (possibly compressed) size written to the store.
	RecordSave(bytes int, duration time.Duration, err error)

	// RecordLoad is called after each result load. bytes is the size read
	// from the store before decompression.
	RecordLoad(bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlign(string, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordResolve(int, int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)                {}
func (NoopMetricsCollector) RecordSave(int, time.Duration, error)               {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AlignCount      atomic.Int64
	AlignErrors     atomic.Int64
	AlignTotalNanos atomic.Int64
	RowsEmitted     atomic.Int64
	RowsMatched     atomic.Int64
	RowsUnmatched   atomic.Int64
	ResolveCount    atomic.Int64
	ResolveErrors   atomic.Int64
	BatchCount      atomic.Int64
	BatchPairs      atomic.Int64
	BatchFailed     atomic.Int64
	SaveCount       atomic.Int64
	SaveErrors      atomic.Int64
	BytesOut        atomic.Int64
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	BytesIn         atomic.Int64
}

// RecordAlign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlign(kind string, rows, matched int, duration time.Duration, err error) {
	b.AlignCount.Add(1)
	b.AlignTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AlignErrors.Add(1)
		return
	}
	b.RowsEmitted.Add(int64(rows))
	b.RowsMatched.Add(int64(matched))
	b.RowsUnmatched.Add(int64(rows - matched))
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(queries, matched int, duration time.Duration, err error) {
	b.ResolveCount.Add(1)
	if err != nil {
		b.ResolveErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(pairs, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchPairs.Add(int64(pairs))
	b.BatchFailed.Add(int64(failed))
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(bytes int, duration time.Duration, err error) {
	b.SaveCount.Add(1)
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.BytesOut.Add(int64(bytes))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(bytes int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.BytesIn.Add(int64(bytes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AlignCount:    b.AlignCount.Load(),
		AlignErrors:   b.AlignErrors.Load(),
		AlignAvgNanos: b.getAvgAlignNanos(),
		RowsEmitted:   b.RowsEmitted.Load(),
		RowsMatched:   b.RowsMatched.Load(),
		RowsUnmatched: b.RowsUnmatched.Load(),
		ResolveCount:  b.ResolveCount.Load(),
		ResolveErrors: b.ResolveErrors.Load(),
		BatchCount:    b.BatchCount.Load(),
		BatchPairs:    b.BatchPairs.Load(),
		BatchFailed:   b.BatchFailed.Load(),
		SaveCount:     b.SaveCount.Load(),
		SaveErrors:    b.SaveErrors.Load(),
		BytesOut:      b.BytesOut.Load(),
		LoadCount:     b.LoadCount.Load(),
		LoadErrors:    b.LoadErrors.Load(),
		BytesIn:       b.BytesIn.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAlignNanos() int64 {
	count := b.AlignCount.Load()
	if count == 0 {
		return 0
	}
	return b.AlignTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AlignCount    int64
	AlignErrors   int64
	AlignAvgNanos int64
	RowsEmitted   int64
	RowsMatched   int64
	RowsUnmatched int64
	ResolveCount  int64
	ResolveErrors int64
	BatchCount    int64
	BatchPairs    int64
	BatchFailed   int64
	SaveCount     int64
	SaveErrors    int64
	BytesOut      int64
	LoadCount     int64
	LoadErrors    int64
	BytesIn       int64
}
