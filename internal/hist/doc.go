// Package hist implements the parallel reduction that turns a k-mer
// count table into a multiplicity histogram: how many distinct k-mers
// occur once, twice, three times, and so on, bucketed into a fixed
// number of contiguous bins.
//
// # Overview
//
// The input is a fully materialized, read-only count table (package
// counts). The table is split into one disjoint shard per worker; each
// worker scans its shard into a private accumulator, and after all
// workers have joined the accumulators are summed bucket-by-bucket into
// the final histogram. Because shards partition the table and the merge
// is a plain sum, the result is identical for any worker count and its
// total always equals the table size.
//
// # Data flow
//
//	NewGeometry(low, high, inc)
//	        │ bucket layout
//	        ▼
//	┌──────────────────────────────────────┐
//	│               Engine                 │
//	│                                      │
//	│  worker 0    worker 1  …  worker N-1 │   fan-out: one goroutine
//	│  shard 0     shard 1      shard N-1  │   per shard, no shared
//	│  accum 0     accum 1      accum N-1  │   mutable state
//	│      └─────────┴─────────────┘       │
//	│         join barrier (Wait)          │
//	│                │                     │
//	│         sequential merge             │
//	└────────────────┼─────────────────────┘
//	                 ▼
//	             Histogram
//
// # Bucket layout
//
// Geometry derives an aligned [Base, Ceil] interval from the requested
// [low, high] range and increment, divided into Inc-wide buckets.
// Values below Base clip into the first bucket and values above Ceil
// into the last, so every multiplicity lands in exactly one bucket.
//
// # Concurrency model
//
// There is exactly one synchronization point, the join barrier before
// the merge. During the scan each worker owns its accumulator and its
// shard outright; workers publish results into slots indexed by shard
// id rather than appending to shared state. There is no cancellation in
// the core: a scan runs to completion or fails as a whole, and a failed
// run returns no histogram at all.
package hist
