package counts

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Table is the read interface the histogram engine consumes.
// Implementations must be safe for concurrent readers; the table is
// expected to be fully loaded and immutable for the duration of a scan.
type Table interface {
	// Size returns the number of distinct k-mers in the table.
	Size() int

	// Shard returns an iterator over the multiplicities belonging to
	// shard index out of total shards. The shards of any total form a
	// partition of the table: every entry appears in exactly one shard,
	// exactly once. Order within a shard is not guaranteed.
	Shard(index, total int) Iterator
}

// Iterator yields multiplicity values lazily. It is finite and
// non-restartable: once Next returns false the iterator is exhausted
// and Err reports any failure encountered while reading.
type Iterator interface {
	// Next advances to the next value, returning false when the shard
	// is exhausted or reading failed.
	Next() bool

	// Value returns the current multiplicity. Only valid after a
	// successful Next.
	Value() uint64

	// Err returns the first error encountered, or nil for a clean
	// exhaustion.
	Err() error
}

// MemoryTable implements Table with an in-memory k-mer count map.
// Uses sync.RWMutex for thread-safe concurrent access.
type MemoryTable struct {
	mu     sync.RWMutex      // Protects concurrent access
	data   map[string]uint64 // k-mer to multiplicity
	frozen []uint64          // Cached multiplicity snapshot for sharding
}

// TableStats contains statistics about the table.
type TableStats struct {
	Kmers     int    // Number of distinct k-mers
	TotalSeen uint64 // Sum of all multiplicities
}

// NewMemoryTable creates a new in-memory count table.
func NewMemoryTable() *MemoryTable {
	return &MemoryTable{
		data: make(map[string]uint64),
	}
}

// Set stores the multiplicity for a k-mer, overwriting any existing count.
func (m *MemoryTable) Set(kmer string, count uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[kmer] = count
	m.frozen = nil
}

// Add increments the multiplicity for a k-mer by n, inserting it with
// count n if absent.
func (m *MemoryTable) Add(kmer string, n uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[kmer] += n
	m.frozen = nil
}

// Get returns the multiplicity for a k-mer, or false if it is absent.
func (m *MemoryTable) Get(kmer string) (uint64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count, ok := m.data[kmer]
	return count, ok
}

// Size returns the number of distinct k-mers in the table.
func (m *MemoryTable) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}

// Kmers returns all k-mers in the table, sorted for consistent ordering.
func (m *MemoryTable) Kmers() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	kmers := make([]string, 0, len(m.data))
	for kmer := range m.data {
		kmers = append(kmers, kmer)
	}
	slices.Sort(kmers)
	return kmers
}

// Stats returns table statistics.
func (m *MemoryTable) Stats() TableStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total uint64
	for _, count := range m.data {
		total += count
	}

	return TableStats{
		Kmers:     len(m.data),
		TotalSeen: total,
	}
}

// Shard returns an iterator over the contiguous slice of the frozen
// multiplicity snapshot assigned to shard index of total. The split
// points are index*size/total, so shards differ in length by at most
// one and cover the snapshot exactly once for any total >= 1.
func (m *MemoryTable) Shard(index, total int) Iterator {
	vals := m.snapshot()
	if total < 1 || index < 0 || index >= total {
		return &sliceIterator{}
	}

	size := len(vals)
	start := index * size / total
	end := (index + 1) * size / total
	return &sliceIterator{vals: vals[start:end]}
}

// snapshot returns the cached multiplicity slice, building it on first
// use. Any write invalidates the cache, so concurrent Shard calls during
// a scan all observe the same snapshot.
func (m *MemoryTable) snapshot() []uint64 {
	m.mu.RLock()
	frozen := m.frozen
	m.mu.RUnlock()
	if frozen != nil {
		return frozen
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frozen == nil {
		vals := make([]uint64, 0, len(m.data))
		for _, count := range m.data {
			vals = append(vals, count)
		}
		m.frozen = vals
	}
	return m.frozen
}

// sliceIterator iterates over a slice of multiplicities. It never fails.
type sliceIterator struct {
	vals []uint64
	pos  int
}

func (it *sliceIterator) Next() bool {
	if it.pos >= len(it.vals) {
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator) Value() uint64 {
	return it.vals[it.pos-1]
}

func (it *sliceIterator) Err() error {
	return nil
}
