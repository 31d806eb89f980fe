package hist

// Histogram is the merged result of a scan: one count of distinct
// k-mers per bucket, positionally aligned with its Geometry. It is
// immutable once returned by the engine.
type Histogram struct {
	geom   Geometry
	counts []uint64
}

// Bin is one reported histogram row: the multiplicity at the lower
// edge of a bucket and the number of distinct k-mers in it.
type Bin struct {
	Value uint64 // Base + k*Inc for bucket k
	Count uint64 // Distinct k-mers whose multiplicity fell in bucket k
}

// Geometry returns the bucket layout the histogram was computed with.
func (h *Histogram) Geometry() Geometry {
	return h.geom
}

// Counts returns the per-bucket counts, index 0 being the lowest
// bucket. The caller must not modify the returned slice.
func (h *Histogram) Counts() []uint64 {
	return h.counts
}

// Total returns the number of table entries scanned, the sum over all
// buckets.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, c := range h.counts {
		total += c
	}
	return total
}

// Bins returns the histogram as ordered (value, count) rows, lowest
// bucket first. This is the shape consumers render.
func (h *Histogram) Bins() []Bin {
	bins := make([]Bin, len(h.counts))
	for k, c := range h.counts {
		bins[k] = Bin{Value: h.geom.BinValue(k), Count: c}
	}
	return bins
}
