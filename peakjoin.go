package peakjoin

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/peakjoin/align"
	"github.com/hupe1980/peakjoin/blobstore"
	"github.com/hupe1980/peakjoin/codec"
	"github.com/hupe1980/peakjoin/internal/compression"
	"github.com/hupe1980/peakjoin/internal/resource"
	"github.com/hupe1980/peakjoin/peaklist"
)

// Aligner joins sorted peak position sequences under a configured tolerance
// and duplicate policy. It is safe for concurrent use.
type Aligner struct {
	tolerance  align.Tolerance
	duplicates align.Duplicates
	codec      codec.Codec
	store      blobstore.Store
	metrics    MetricsCollector
	logger     *Logger
	rc         *resource.Controller
	closed     atomic.Bool
}

// New creates an Aligner. With no options it matches exact positions only,
// resolves duplicate claims by smallest distance and keeps results in
// memory.
func New(optFns ...Option) *Aligner {
	opts := applyOptions(optFns)

	c := opts.codec
	if c == nil {
		c = codec.Default
	}

	return &Aligner{
		tolerance:  opts.tolerance,
		duplicates: opts.duplicates,
		codec:      c,
		store:      opts.store,
		metrics:    opts.metricsCollector,
		logger:     opts.logger,
		rc: resource.NewController(resource.Config{
			MemoryLimitBytes:   opts.memoryLimit,
			MaxWorkers:         opts.maxConcurrency,
			IOLimitBytesPerSec: opts.ioLimit,
		}),
	}
}

// Align joins x and y under the configured tolerance. Both sequences must
// be sorted ascending.
func (a *Aligner) Align(ctx context.Context, x, y []float64, kind align.Kind) (*align.Table, error) {
	start := time.Now()
	if a.closed.Load() {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := align.Join(x, y, a.tolerance, kind)
	duration := time.Since(start)
	if err != nil {
		a.metrics.RecordAlign(kind.String(), 0, 0, duration, err)
		a.logger.LogAlign(ctx, kind.String(), 0, 0, err)
		return nil, err
	}

	a.metrics.RecordAlign(kind.String(), t.Len(), t.Matched(), duration, nil)
	a.logger.LogAlign(ctx, kind.String(), t.Len(), t.Matched(), nil)
	return t, nil
}

// Resolve maps every element of x to the index of its closest y within
// tolerance, settling multiply-claimed y elements under the configured
// duplicate policy.
func (a *Aligner) Resolve(ctx context.Context, x, y []float64) ([]align.Index, error) {
	start := time.Now()
	if a.closed.Load() {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx, err := align.Closest(x, y, a.tolerance, a.duplicates)
	duration := time.Since(start)
	if err != nil {
		a.metrics.RecordResolve(len(x), 0, duration, err)
		a.logger.LogResolve(ctx, len(x), 0, err)
		return nil, err
	}

	matched := 0
	for _, i := range idx {
		if i.Valid() {
			matched++
		}
	}
	a.metrics.RecordResolve(len(x), matched, duration, nil)
	a.logger.LogResolve(ctx, len(x), matched, nil)
	return idx, nil
}

// AlignPeakLists validates both peak lists, joins their positions and
// returns the table with provenance.
func (a *Aligner) AlignPeakLists(ctx context.Context, left, right *peaklist.PeakList, kind align.Kind) (*Result, error) {
	start := time.Now()
	if a.closed.Load() {
		return nil, ErrClosed
	}

	if left == nil || right == nil {
		return nil, fmt.Errorf("nil peak list")
	}
	if err := left.Validate(); err != nil {
		return nil, fmt.Errorf("left peak list %q: %w", left.ID, err)
	}
	if err := right.Validate(); err != nil {
		return nil, fmt.Errorf("right peak list %q: %w", right.ID, err)
	}

	// Bound the transient table memory while batches are in flight.
	est := estimateTableBytes(left.Len(), right.Len())
	if err := a.rc.AcquireMemory(est); err != nil {
		return nil, err
	}
	defer a.rc.ReleaseMemory(est)

	t, err := a.Align(ctx, left.Positions(), right.Positions(), kind)
	if err != nil {
		return nil, err
	}

	return &Result{
		LeftID:   left.ID,
		RightID:  right.ID,
		Kind:     kind.String(),
		Table:    t,
		LeftLen:  left.Len(),
		RightLen: right.Len(),
		Matched:  t.Matched(),
		Elapsed:  time.Since(start),
	}, nil
}

// AlignBatch aligns the pairs concurrently, bounded by the configured
// concurrency limit. Results keep the input order. The first error cancels
// the remaining work and is returned.
func (a *Aligner) AlignBatch(ctx context.Context, pairs []PeakListPair, kind align.Kind) ([]*Result, error) {
	start := time.Now()
	if a.closed.Load() {
		return nil, ErrClosed
	}

	results := make([]*Result, len(pairs))
	g, gctx := errgroup.WithContext(ctx)

	for i, pair := range pairs {
		g.Go(func() error {
			if err := a.rc.AcquireWorker(gctx); err != nil {
				return err
			}
			defer a.rc.ReleaseWorker()

			res, err := a.AlignPeakLists(gctx, pair.Left, pair.Right, kind)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()
	duration := time.Since(start)

	failed := 0
	for _, r := range results {
		if r == nil {
			failed++
		}
	}
	a.metrics.RecordBatch(len(pairs), failed, duration)
	a.logger.LogBatch(ctx, len(pairs), failed)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// SaveResult encodes res with the configured codec and stores it under
// name. Names ending in ".zst" or ".lz4" are compressed on the way out.
func (a *Aligner) SaveResult(ctx context.Context, name string, res *Result) error {
	start := time.Now()
	if a.closed.Load() {
		return ErrClosed
	}
	if a.store == nil {
		return ErrNoStore
	}

	data, err := a.codec.Marshal(res)
	if err != nil {
		a.metrics.RecordSave(0, time.Since(start), err)
		a.logger.LogSave(ctx, name, 0, err)
		return fmt.Errorf("encode result: %w", err)
	}

	algo, _ := compression.ForPath(name)
	data, err = compression.Compress(data, algo)
	if err != nil {
		a.metrics.RecordSave(0, time.Since(start), err)
		a.logger.LogSave(ctx, name, 0, err)
		return fmt.Errorf("compress result: %w", err)
	}

	if err := a.rc.AcquireIO(ctx, len(data)); err != nil {
		return err
	}

	err = translateError(a.store.Put(ctx, name, data))
	a.metrics.RecordSave(len(data), time.Since(start), err)
	a.logger.LogSave(ctx, name, len(data), err)
	return err
}

// LoadResult fetches and decodes the result stored under name.
func (a *Aligner) LoadResult(ctx context.Context, name string) (*Result, error) {
	start := time.Now()
	if a.closed.Load() {
		return nil, ErrClosed
	}
	if a.store == nil {
		return nil, ErrNoStore
	}

	data, err := a.store.Get(ctx, name)
	if err != nil {
		err = translateError(err)
		a.metrics.RecordLoad(0, time.Since(start), err)
		a.logger.LogLoad(ctx, name, 0, err)
		return nil, err
	}

	if err := a.rc.AcquireIO(ctx, len(data)); err != nil {
		return nil, err
	}

	algo, _ := compression.ForPath(name)
	raw, err := compression.Decompress(data, algo)
	if err != nil {
		a.metrics.RecordLoad(0, time.Since(start), err)
		a.logger.LogLoad(ctx, name, 0, err)
		return nil, fmt.Errorf("decompress result: %w", err)
	}

	var res Result
	if err := a.codec.Unmarshal(raw, &res); err != nil {
		a.metrics.RecordLoad(0, time.Since(start), err)
		a.logger.LogLoad(ctx, name, 0, err)
		return nil, fmt.Errorf("decode result: %w", err)
	}

	a.metrics.RecordLoad(len(data), time.Since(start), nil)
	a.logger.LogLoad(ctx, name, len(data), nil)
	return &res, nil
}

// Close marks the aligner closed; further operations return ErrClosed.
// Close is idempotent.
func (a *Aligner) Close() error {
	if a == nil {
		return nil
	}
	a.closed.Store(true)
	return nil
}

// estimateTableBytes bounds a join table's footprint: two 8 byte indexes
// per row, at most len(x)+len(y) rows.
func estimateTableBytes(nx, ny int) int64 {
	return int64(nx+ny) * 16
}
