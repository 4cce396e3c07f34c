// Package occurrence implements the dense, arena-style storage of pattern
// occurrences described in sequoia.c: every PatternOccurrence for a
// top-level mining run is allocated once, in a single contiguous backing
// array, and reused at every recursion depth: each commit at depth l
// truncates its Pos slice to l entries and appends the new position.
package occurrence

import "github.com/faraday/borgelt/pkg/tract"

// Occurrence represents one way the current prefix matches one
// transaction. Items is a borrowed view of the transaction's item slice;
// Pos holds the strictly increasing offsets, into Items, of the positions
// matched so far. The projection engine sets Pos to Pos[:l] plus one new
// position each time it commits at depth l; nothing shortens it when a
// recursion frame returns, so len(Pos) may exceed the current prefix
// length and only its first prefix-length entries are meaningful. It is
// never reallocated after BuildInitial, only reused.
type Occurrence struct {
	Weight tract.Support
	Items  []tract.Item
	Pos    []int // cap == len(Items)
}

// BuildInitial allocates the occurrence arena for a mining run: one
// Occurrence per transaction, each with its Pos backed by a
// non-overlapping slice of a single flat cursor array sized from the
// database's extent. This mirrors sequoia.c's single malloc of
// "PATOCC * N | ITEM** * extent" and its manual sub-slicing by transaction
// size.
func BuildInitial(db tract.Database) []Occurrence {
	n := db.TransactionCount()
	extent := db.Extent()
	flat := make([]int, extent)
	occs := make([]Occurrence, n)
	offset := 0
	for j := 0; j < n; j++ {
		size := db.Size(j)
		occs[j] = Occurrence{
			Weight: db.Weight(j),
			Items:  db.Items(j),
			Pos:    flat[offset : offset : offset+size],
		}
		offset += size
	}
	return occs
}

// WeightedOccurrence is the item-weighted counterpart of Occurrence.
type WeightedOccurrence struct {
	Weight tract.Support
	Items  []tract.WeightedItem
	Pos    []int
}

// BuildInitialWeighted is the item-weighted counterpart of BuildInitial.
func BuildInitialWeighted(db tract.WeightedDatabase) []WeightedOccurrence {
	n := db.TransactionCount()
	extent := db.Extent()
	flat := make([]int, extent)
	occs := make([]WeightedOccurrence, n)
	offset := 0
	for j := 0; j < n; j++ {
		size := db.Size(j)
		occs[j] = WeightedOccurrence{
			Weight: db.Weight(j),
			Items:  db.Items(j),
			Pos:    flat[offset : offset : offset+size],
		}
		offset += size
	}
	return occs
}
