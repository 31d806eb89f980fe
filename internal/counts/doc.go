// Package counts provides the k-mer count table that the histogram
// engine scans: the Table interface for read-only sharded access, an
// in-memory implementation, and a loader for pre-built binary dumps.
//
// # Overview
//
// A count table maps each distinct k-mer to its multiplicity (how many
// times it occurred in the counted input). This package never counts
// k-mers itself; counting is an external concern and tables arrive here
// fully materialized, either built in memory via Set/Add or loaded from
// a dump produced by an external counter.
//
// # Sharded access
//
// The histogram engine reads a table through disjoint shards so that N
// workers can scan concurrently without locks:
//
//	┌──────────────────────────────┐
//	│        MemoryTable           │
//	│   (frozen value snapshot)    │
//	└──────────────────────────────┘
//	      │         │         │
//	      ▼         ▼         ▼
//	 Shard(0,3) Shard(1,3) Shard(2,3)
//
// Shard(i, n) returns a lazy iterator over a contiguous slice of the
// table's frozen multiplicity snapshot. For any n >= 1 the n shards
// partition the table exactly: no entry is duplicated or omitted, even
// when n does not divide the table size (or exceeds it, in which case
// some shards are simply empty). Only multiplicities are exposed; keys
// are irrelevant to downstream consumers.
//
// # Dump format
//
// Load reads, and WriteDump writes, a fixed-width binary format: a
// 16-byte header (magic, version, k-mer length, entry count) followed
// by one 16-byte record per entry (2-bit packed k-mer, multiplicity).
// The file size is fully determined by the header, so truncated or
// malformed dumps are rejected with ErrTableCorrupt before any partial
// table becomes observable.
package counts
