package counts

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Dump format: a fixed-size header followed by fixed-width records, so
// the file size alone determines the entry count and truncation is
// always detectable.
//
//	header:  magic "KHCT" | version uint16 | k uint16 | entries uint64
//	record:  packed k-mer uint64 | multiplicity uint64
//
// All integers are little-endian.
const (
	dumpMagic      = "KHCT"
	dumpVersion    = uint16(1)
	dumpHeaderSize = 16
	dumpRecordSize = 16
)

// ErrTableCorrupt is returned when a count-table dump is unreadable,
// truncated or otherwise malformed. Loading is never retried and never
// yields a partial table.
var ErrTableCorrupt = errors.New("count table corrupt")

// Source is a count-table dump source. An mmap'd file satisfies it.
type Source interface {
	io.ReaderAt

	// Len returns the size of the dump in bytes.
	Len() int
}

// Load reads a complete count-table dump into memory. The dump must
// have been produced by WriteDump or an external counter emitting the
// same format.
func Load(src Source) (*MemoryTable, error) {
	if src.Len() < dumpHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is smaller than the header", ErrTableCorrupt, src.Len())
	}

	var header [dumpHeaderSize]byte
	if _, err := src.ReadAt(header[:], 0); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrTableCorrupt, err)
	}
	if string(header[:4]) != dumpMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrTableCorrupt, header[:4])
	}
	if v := binary.LittleEndian.Uint16(header[4:6]); v != dumpVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrTableCorrupt, v)
	}
	k := int(binary.LittleEndian.Uint16(header[6:8]))
	if k < 1 || k > MaxKmerLen {
		return nil, fmt.Errorf("%w: k-mer length %d not in [1, %d]", ErrTableCorrupt, k, MaxKmerLen)
	}
	entries := binary.LittleEndian.Uint64(header[8:16])

	want := dumpHeaderSize + int64(entries)*dumpRecordSize
	if int64(src.Len()) != want {
		return nil, fmt.Errorf("%w: %d entries need %d bytes, have %d", ErrTableCorrupt, entries, want, src.Len())
	}

	table := NewMemoryTable()
	var rec [dumpRecordSize]byte
	for i := uint64(0); i < entries; i++ {
		off := dumpHeaderSize + int64(i)*dumpRecordSize
		if _, err := src.ReadAt(rec[:], off); err != nil {
			return nil, fmt.Errorf("%w: reading entry %d: %v", ErrTableCorrupt, i, err)
		}
		packed := binary.LittleEndian.Uint64(rec[0:8])
		count := binary.LittleEndian.Uint64(rec[8:16])
		if count == 0 {
			return nil, fmt.Errorf("%w: entry %d has zero multiplicity", ErrTableCorrupt, i)
		}
		table.Set(UnpackKmer(packed, k), count)
	}
	return table, nil
}

// WriteDump writes the table as a dump with k-mer length k. Every k-mer
// in the table must be exactly k bases of ACGT.
func WriteDump(w io.Writer, table *MemoryTable, k int) error {
	if k < 1 || k > MaxKmerLen {
		return fmt.Errorf("k-mer length %d not in [1, %d]", k, MaxKmerLen)
	}

	var header [dumpHeaderSize]byte
	copy(header[:4], dumpMagic)
	binary.LittleEndian.PutUint16(header[4:6], dumpVersion)
	binary.LittleEndian.PutUint16(header[6:8], uint16(k))
	binary.LittleEndian.PutUint64(header[8:16], uint64(table.Size()))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	var rec [dumpRecordSize]byte
	for _, kmer := range table.Kmers() {
		if len(kmer) != k {
			return fmt.Errorf("k-mer %q is not %d bases", kmer, k)
		}
		packed, err := PackKmer(kmer)
		if err != nil {
			return err
		}
		count, _ := table.Get(kmer)
		binary.LittleEndian.PutUint64(rec[0:8], packed)
		binary.LittleEndian.PutUint64(rec[8:16], count)
		if _, err := w.Write(rec[:]); err != nil {
			return err
		}
	}
	return nil
}
