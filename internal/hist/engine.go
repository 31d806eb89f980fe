package hist

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dreamware/khist/internal/counts"
)

// Engine runs the parallel reduction over a count table: one worker
// goroutine per shard, each scanning its shard into a private
// accumulator, then a sequential merge after all workers have joined.
type Engine struct {
	geom    Geometry
	workers int
}

// NewEngine creates an engine for the given bucket layout and worker
// count. The worker count is also the shard count: worker i scans
// shard i of workers.
func NewEngine(geom Geometry, workers int) (*Engine, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: worker count must be >= 1, got %d", ErrConfig, workers)
	}
	return &Engine{geom: geom, workers: workers}, nil
}

// Run scans the table and returns the merged histogram.
//
// Each worker publishes its finished accumulator into a result slot
// indexed by shard id, so no synchronization is needed during the
// fan-out phase. Wait is the single join barrier: the merge never
// observes a partially scanned accumulator, and worker completion
// order cannot affect the result. If any shard's iterator fails the
// whole run fails and no histogram is returned.
func (e *Engine) Run(table counts.Table) (*Histogram, error) {
	results := make([]*accumulator, e.workers)

	var eg errgroup.Group
	for i := 0; i < e.workers; i++ {
		i := i
		eg.Go(func() error {
			acc := newAccumulator(e.geom)
			it := table.Shard(i, e.workers)
			for it.Next() {
				acc.observe(it.Value())
			}
			if err := it.Err(); err != nil {
				return fmt.Errorf("scanning shard %d of %d: %w", i, e.workers, err)
			}
			results[i] = acc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := &Histogram{
		geom:   e.geom,
		counts: make([]uint64, e.geom.Buckets),
	}
	for k := range merged.counts {
		for _, acc := range results {
			merged.counts[k] += acc.counts[k]
		}
	}
	return merged, nil
}

// Compute derives the bucket layout from the given bounds and runs a
// scan with the given worker count. It is the one-call entry point:
// all configuration errors surface here before any scanning starts.
func Compute(table counts.Table, low, high, inc uint64, workers int) (*Histogram, error) {
	geom, err := NewGeometry(low, high, inc)
	if err != nil {
		return nil, err
	}
	engine, err := NewEngine(geom, workers)
	if err != nil {
		return nil, err
	}
	return engine.Run(table)
}
