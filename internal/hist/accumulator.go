package hist

// accumulator is the scratch histogram one worker fills while scanning
// its shard. Each worker owns its accumulator exclusively until the
// scan completes, so observe needs no synchronization; after the join
// barrier the engine reads it for the merge and it is discarded.
type accumulator struct {
	geom   Geometry
	counts []uint64
}

func newAccumulator(geom Geometry) *accumulator {
	return &accumulator{
		geom:   geom,
		counts: make([]uint64, geom.Buckets),
	}
}

// observe classifies one raw multiplicity and increments its bucket.
func (a *accumulator) observe(val uint64) {
	a.counts[a.geom.Bucket(val)]++
}
