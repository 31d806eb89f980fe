package hist

import "fmt"

// Geometry describes the bucket layout of a histogram: the requested
// [Low, High] range, the bucket width Inc, and the derived aligned
// bounds Base and Ceil. Bucket k covers raw values in
// [Base+k*Inc, Base+(k+1)*Inc), except that bucket 0 also absorbs every
// value below Base and the last bucket every value above Ceil.
type Geometry struct {
	Low     uint64 // Requested low count bound
	High    uint64 // Requested high count bound
	Inc     uint64 // Bucket width
	Base    uint64 // Low rounded down to a multiple of Inc
	Ceil    uint64 // High rounded up so Ceil-Base is a multiple of Inc
	Buckets int    // Number of buckets, always >= 1
}

// NewGeometry derives the bucket layout for the given bounds and
// increment. It is a pure computation: the same inputs always produce
// the same layout.
//
// Base rounds low down to the nearest multiple of inc and Ceil rounds
// high up to the next bucket boundary above Base, so the closed
// interval [Base, Ceil] divides evenly into Inc-wide buckets and
// Buckets = (Ceil-Base)/Inc + 1.
func NewGeometry(low, high, inc uint64) (Geometry, error) {
	if high < low {
		return Geometry{}, fmt.Errorf("%w: high (%d) must be >= low (%d)", ErrConfig, high, low)
	}
	if inc == 0 {
		return Geometry{}, fmt.Errorf("%w: increment must be > 0", ErrConfig)
	}

	base := low - low%inc
	span := high - base
	if rem := span % inc; rem != 0 {
		span += inc - rem
	}
	return Geometry{
		Low:     low,
		High:    high,
		Inc:     inc,
		Base:    base,
		Ceil:    base + span,
		Buckets: int(span/inc) + 1,
	}, nil
}

// Bucket classifies a raw multiplicity into a bucket index. Values
// below Base clip to bucket 0 and values above Ceil clip to the last
// bucket, so the result is always in [0, Buckets).
func (g Geometry) Bucket(val uint64) int {
	if val < g.Base {
		return 0
	}
	if val > g.Ceil {
		return g.Buckets - 1
	}
	return int((val - g.Base) / g.Inc)
}

// BinValue returns the raw value at the lower edge of bucket k, the
// value the bucket is reported under.
func (g Geometry) BinValue(k int) uint64 {
	return g.Base + uint64(k)*g.Inc
}
