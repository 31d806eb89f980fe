package hist

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a k-mer spectrum: the
// headline numbers reported alongside the histogram rows.
type Summary struct {
	Distinct uint64  // Distinct k-mers counted (sum of all buckets)
	Total    uint64  // Total k-mer instances (counts weighted by bin value)
	Mean     float64 // Mean multiplicity across distinct k-mers
	StdDev   float64 // Standard deviation of the multiplicity
	Peak     uint64  // Bin value of the fullest bucket
}

// Summarize computes spectrum statistics from a histogram, treating
// each bucket's bin value as the multiplicity of every k-mer in it.
// An empty histogram yields a zero Summary with NaN-free fields.
func Summarize(h *Histogram) Summary {
	bins := h.Bins()

	values := make([]float64, 0, len(bins))
	weights := make([]float64, 0, len(bins))

	var s Summary
	var peakCount uint64
	for _, bin := range bins {
		if bin.Count == 0 {
			continue
		}
		values = append(values, float64(bin.Value))
		weights = append(weights, float64(bin.Count))
		s.Distinct += bin.Count
		s.Total += bin.Value * bin.Count
		if bin.Count > peakCount {
			peakCount = bin.Count
			s.Peak = bin.Value
		}
	}
	if s.Distinct == 0 {
		return Summary{}
	}

	s.Mean = stat.Mean(values, weights)
	if variance := stat.Variance(values, weights); !math.IsNaN(variance) {
		s.StdDev = math.Sqrt(variance)
	}
	return s
}
