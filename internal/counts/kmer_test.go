package counts

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// TestPackKmer tests 2-bit packing of valid k-mers
func TestPackKmer(t *testing.T) {
	tests := []struct {
		kmer   string
		packed uint64
	}{
		{"A", 0},
		{"C", 1},
		{"G", 2},
		{"T", 3},
		{"AA", 0},
		{"ACGT", 0b00011011},
		{"acgt", 0b00011011},
		{"TTTT", 0b11111111},
	}

	for _, tt := range tests {
		t.Run(tt.kmer, func(t *testing.T) {
			packed, err := PackKmer(tt.kmer)
			if err != nil {
				t.Fatalf("PackKmer(%q) failed: %v", tt.kmer, err)
			}
			if packed != tt.packed {
				t.Errorf("PackKmer(%q): expected %b, got %b", tt.kmer, tt.packed, packed)
			}
		})
	}
}

// TestPackKmerErrors tests rejection of unpackable k-mers
func TestPackKmerErrors(t *testing.T) {
	bad := []string{"", "ACGN", "ACG T", strings.Repeat("A", 33)}

	for _, kmer := range bad {
		if _, err := PackKmer(kmer); !errors.Is(err, ErrBadKmer) {
			t.Errorf("PackKmer(%q): expected ErrBadKmer, got %v", kmer, err)
		}
	}
}

// TestKmerRoundTrip verifies pack/unpack is lossless for random k-mers
func TestKmerRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	bases := []byte{'A', 'C', 'G', 'T'}

	for trial := 0; trial < 200; trial++ {
		k := 1 + rng.Intn(MaxKmerLen)
		buf := make([]byte, k)
		for i := range buf {
			buf[i] = bases[rng.Intn(4)]
		}
		kmer := string(buf)

		packed, err := PackKmer(kmer)
		if err != nil {
			t.Fatalf("PackKmer(%q) failed: %v", kmer, err)
		}
		if got := UnpackKmer(packed, k); got != kmer {
			t.Errorf("Round trip of %q gave %q", kmer, got)
		}
	}
}
