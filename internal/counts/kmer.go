package counts

import (
	"errors"
	"fmt"
)

// MaxKmerLen is the longest k-mer that fits a 2-bit packed uint64.
const MaxKmerLen = 32

// ErrBadKmer is returned when a k-mer cannot be packed.
var ErrBadKmer = errors.New("bad k-mer")

var bitBases = [4]byte{'A', 'C', 'G', 'T'}

// baseBits maps a base character to its 2-bit code, -1 for anything
// that is not ACGT in either case.
var baseBits [256]int8

func init() {
	for i := range baseBits {
		baseBits[i] = -1
	}
	for code, base := range bitBases {
		baseBits[base] = int8(code)
		baseBits[base|0x20] = int8(code) // lower case
	}
}

// PackKmer encodes a k-mer of up to 32 bases into a uint64 using 2 bits
// per base, most significant base first.
func PackKmer(kmer string) (uint64, error) {
	if len(kmer) == 0 || len(kmer) > MaxKmerLen {
		return 0, fmt.Errorf("%w: length %d not in [1, %d]", ErrBadKmer, len(kmer), MaxKmerLen)
	}

	var packed uint64
	for i := 0; i < len(kmer); i++ {
		bits := baseBits[kmer[i]]
		if bits < 0 {
			return 0, fmt.Errorf("%w: invalid base %q at position %d", ErrBadKmer, kmer[i], i)
		}
		packed = packed<<2 | uint64(bits)
	}
	return packed, nil
}

// UnpackKmer decodes a 2-bit packed k-mer of length k back to its
// base string.
func UnpackKmer(packed uint64, k int) string {
	buf := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		buf[i] = bitBases[packed&3]
		packed >>= 2
	}
	return string(buf)
}
