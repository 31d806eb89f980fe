package counts

import (
	"fmt"
	"testing"
)

// TestMemoryTableOperations tests basic count operations
func TestMemoryTableOperations(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		table := NewMemoryTable()

		table.Set("ACGT", 5)
		count, ok := table.Get("ACGT")
		if !ok {
			t.Fatal("Expected k-mer to be present")
		}
		if count != 5 {
			t.Errorf("Expected count 5, got %d", count)
		}

		// Overwrite
		table.Set("ACGT", 9)
		count, _ = table.Get("ACGT")
		if count != 9 {
			t.Errorf("Expected count 9 after overwrite, got %d", count)
		}
	})

	t.Run("add accumulates", func(t *testing.T) {
		table := NewMemoryTable()

		table.Add("TTTT", 2)
		table.Add("TTTT", 3)
		count, _ := table.Get("TTTT")
		if count != 5 {
			t.Errorf("Expected count 5, got %d", count)
		}
	})

	t.Run("missing k-mer", func(t *testing.T) {
		table := NewMemoryTable()

		if _, ok := table.Get("GGGG"); ok {
			t.Error("Expected missing k-mer to report absent")
		}
	})

	t.Run("size and stats", func(t *testing.T) {
		table := NewMemoryTable()
		table.Set("AAAA", 3)
		table.Set("CCCC", 7)

		if table.Size() != 2 {
			t.Errorf("Expected size 2, got %d", table.Size())
		}

		stats := table.Stats()
		if stats.Kmers != 2 {
			t.Errorf("Expected 2 k-mers, got %d", stats.Kmers)
		}
		if stats.TotalSeen != 10 {
			t.Errorf("Expected 10 total observations, got %d", stats.TotalSeen)
		}
	})

	t.Run("kmers sorted", func(t *testing.T) {
		table := NewMemoryTable()
		table.Set("TTTT", 1)
		table.Set("AAAA", 1)
		table.Set("GGGG", 1)

		kmers := table.Kmers()
		want := []string{"AAAA", "GGGG", "TTTT"}
		if len(kmers) != len(want) {
			t.Fatalf("Expected %d k-mers, got %d", len(want), len(kmers))
		}
		for i := range want {
			if kmers[i] != want[i] {
				t.Errorf("Position %d: expected %s, got %s", i, want[i], kmers[i])
			}
		}
	})
}

// TestShardPartition verifies the shards of any count form a true
// partition of the table: every entry exactly once
func TestShardPartition(t *testing.T) {
	sizes := []int{0, 1, 7, 100, 1001}
	shardCounts := []int{1, 2, 3, 7, 64, 1500}

	for _, size := range sizes {
		table := NewMemoryTable()
		var wantTotal uint64
		for i := 0; i < size; i++ {
			count := uint64(i + 1)
			table.Set(fmt.Sprintf("kmer-%d", i), count)
			wantTotal += count
		}

		for _, total := range shardCounts {
			t.Run(fmt.Sprintf("%d entries %d shards", size, total), func(t *testing.T) {
				var seen int
				var sum uint64
				for i := 0; i < total; i++ {
					it := table.Shard(i, total)
					for it.Next() {
						seen++
						sum += it.Value()
					}
					if err := it.Err(); err != nil {
						t.Fatalf("Shard %d failed: %v", i, err)
					}
				}

				if seen != size {
					t.Errorf("Expected %d entries across shards, got %d", size, seen)
				}
				// Multiplicities are distinct, so a matching sum means no
				// entry was swapped for a duplicate.
				if sum != wantTotal {
					t.Errorf("Expected value sum %d, got %d", wantTotal, sum)
				}
			})
		}
	}
}

// TestShardDegenerateArgs verifies out-of-range shard arguments yield
// empty iterators rather than panics
func TestShardDegenerateArgs(t *testing.T) {
	table := NewMemoryTable()
	table.Set("ACGT", 1)

	for _, args := range [][2]int{{-1, 4}, {4, 4}, {0, 0}, {0, -1}} {
		it := table.Shard(args[0], args[1])
		if it.Next() {
			t.Errorf("Shard(%d, %d) should be empty", args[0], args[1])
		}
	}
}

// TestShardSnapshotStable verifies concurrent Shard calls observe the
// same frozen snapshot until the next write
func TestShardSnapshotStable(t *testing.T) {
	table := NewMemoryTable()
	for i := 0; i < 100; i++ {
		table.Set(fmt.Sprintf("kmer-%d", i), uint64(i+1))
	}

	a := table.Shard(0, 1)
	table.Set("late", 1000)
	b := table.Shard(0, 1)

	var aCount, bCount int
	for a.Next() {
		aCount++
	}
	for b.Next() {
		bCount++
	}

	if aCount != 100 {
		t.Errorf("Iterator from before the write should see 100 entries, got %d", aCount)
	}
	if bCount != 101 {
		t.Errorf("Iterator from after the write should see 101 entries, got %d", bCount)
	}
}
