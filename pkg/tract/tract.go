// Package tract defines the read-only transaction database contract the
// mining engine is built against. Naming follows the "tract"/"tabag"
// vocabulary of Christian Borgelt's sequoia.c: a single transaction is a
// "tract", the full collection a "tabag" (transaction bag).
package tract

// Item is a dense item identifier in [0, M). Unlike the original C source,
// sequences are plain Go slices, so no end-of-sequence sentinel value is
// needed: the slice length stands in for it.
type Item int

// Support is the sum of transaction weights matching a pattern. W, the
// database weight, and smin, the minimum support, are both expressed in
// this unit.
type Support int64

// WeightedItem pairs an item with its per-occurrence real weight, used by
// the item-weighted flavor.
type WeightedItem struct {
	Item   Item
	Weight float64
}

// Database is the unweighted transaction view: item count M, transaction
// count N, total weight W, and per-transaction access. The engine never
// mutates it and never checks items for being in range — that is the
// collaborator's responsibility, per the database contract in the core
// design. A transaction's item slice is a sequence, not a set: the same
// item may occur at more than one position (see pkg/extension, which
// dedupes to each item's leftmost remaining position per occurrence).
type Database interface {
	ItemCount() int
	TransactionCount() int
	TotalWeight() Support
	// Extent is the total number of non-sentinel item instances across all
	// transactions, i.e. sum(Size(j)) for j in [0, N).
	Extent() int

	Weight(j int) Support
	Items(j int) []Item
	Size(j int) int
}

// WeightedDatabase is the item-weighted counterpart of Database.
type WeightedDatabase interface {
	ItemCount() int
	TransactionCount() int
	TotalWeight() Support
	Extent() int

	Weight(j int) Support
	Items(j int) []WeightedItem
	Size(j int) int
}
