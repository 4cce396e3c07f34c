// Package extension implements the extension arena: for a set of
// occurrences of the current prefix, one ExtensionBucket per item, each
// owning a slice of a flat OccurrenceExtension array. This mirrors
// sequoia.c's "exts"/"oxs" arrays, generalized (see DESIGN.md) to dedupe
// repeated item values within one occurrence's remaining items down to
// their leftmost instance — the literal source assumes a repeat-free
// alphabet per transaction and would otherwise double-count an occurrence
// that contains the same item more than once, which unique-item-occurrence
// semantics (spec.md §1/GLOSSARY) requires treating as a single available
// extension.
package extension

import (
	"github.com/faraday/borgelt/pkg/occurrence"
	"github.com/faraday/borgelt/pkg/tract"
)

// OccurrenceExtension is a candidate one-step extension of a specific
// occurrence by a specific item: ItemRef is the offset, into Occ.Items,
// of the item that would be appended.
type OccurrenceExtension struct {
	ItemRef int
	Occ     *occurrence.Occurrence
}

// Bucket groups every occurrence extension whose ItemRef names the same
// item.
type Bucket struct {
	Supp  tract.Support
	Count int
	Oxs   []OccurrenceExtension
}

// BuildInitial builds the bucket array E[0..M) and its backing flat array
// for the empty prefix, from the raw database occurrences: a two-pass
// counting + layout + fill, per spec.md §4.3. Each occurrence contributes
// at most one entry per distinct item value, at that item's leftmost
// position.
func BuildInitial(itemCount int, occs []occurrence.Occurrence) []Bucket {
	counts := make([]int, itemCount)
	seen := make([]bool, itemCount)
	touched := make([]tract.Item, 0, itemCount)

	for j := range occs {
		for _, it := range occs[j].Items {
			if seen[it] {
				continue
			}
			seen[it] = true
			touched = append(touched, it)
			counts[it]++
		}
		touched = clearSeen(seen, touched)
	}

	buckets := make([]Bucket, itemCount)
	flat := make([]OccurrenceExtension, sum(counts))
	assignSlices(buckets, flat, counts)

	for j := range occs {
		o := &occs[j]
		for s, it := range o.Items {
			if seen[it] {
				continue
			}
			seen[it] = true
			touched = append(touched, it)
			b := &buckets[it]
			b.Oxs[b.Count] = OccurrenceExtension{ItemRef: s, Occ: o}
			b.Count++
			b.Supp += o.Weight
		}
		touched = clearSeen(seen, touched)
	}
	return buckets
}

// AllocConditional allocates the single conditional-extension arena a
// recursion frame owns for the whole of its i-loop (spec.md §4.4 step 1;
// §5's "each recursion frame owns one conditional arena"): one Bucket per
// item, capacity-bounded by exts[k].Count — the current frame's own
// bucket-k occurrence count. That bound is safe because any occurrence
// that contributes a tail entry for item k during this frame's fill passes
// is, by construction, already one of exts[k]'s own occurrences (it has
// item k unconsumed) — so it is already counted in exts[k].Count. Reset
// and FillConditional reuse the returned arena across every sibling in the
// i-loop; callers must not call AllocConditional per sibling (see
// DESIGN.md).
func AllocConditional(itemCount int, exts []Bucket) []Bucket {
	counts := make([]int, itemCount)
	for k := range exts {
		counts[k] = exts[k].Count
	}
	buckets := make([]Bucket, itemCount)
	flat := make([]OccurrenceExtension, sum(counts))
	assignSlices(buckets, flat, counts)
	return buckets
}

// FillConditional populates buckets — previously sized by AllocConditional
// and cleared by Reset — with the tail extensions of e's occurrences
// (spec.md §4.4 step 3e): for each occurrence, walk its tail beginning
// just after e's ItemRef, deduping repeated item values down to their
// leftmost tail instance. Returns z', the total number of entries written
// across all buckets. On return each bucket's Oxs holds exactly its Count
// entries.
func FillConditional(buckets []Bucket, e *Bucket) int {
	itemCount := len(buckets)
	seen := make([]bool, itemCount)
	touched := make([]tract.Item, 0, itemCount)
	for i := range buckets {
		buckets[i].Oxs = buckets[i].Oxs[:cap(buckets[i].Oxs)]
	}
	z := 0
	for _, x := range e.Oxs {
		items := x.Occ.Items
		for p := x.ItemRef + 1; p < len(items); p++ {
			it := items[p]
			if seen[it] {
				continue
			}
			seen[it] = true
			touched = append(touched, it)
			b := &buckets[it]
			b.Oxs[b.Count] = OccurrenceExtension{ItemRef: p, Occ: x.Occ}
			b.Count++
			b.Supp += x.Occ.Weight
			z++
		}
		touched = clearSeen(seen, touched)
	}
	for i := range buckets {
		buckets[i].Oxs = buckets[i].Oxs[:buckets[i].Count]
	}
	return z
}

// Reset clears Supp/Count on every bucket, in place, for reuse as a
// conditional arena at the next sibling item in the i-loop. Oxs capacity
// (and the backing flat array) is retained.
func Reset(buckets []Bucket) {
	for i := range buckets {
		buckets[i].Supp = 0
		buckets[i].Count = 0
	}
}

func assignSlices(buckets []Bucket, flat []OccurrenceExtension, counts []int) {
	offset := 0
	for i, c := range counts {
		buckets[i].Oxs = flat[offset : offset+c : offset+c]
		offset += c
	}
}

func clearSeen(seen []bool, touched []tract.Item) []tract.Item {
	for _, it := range touched {
		seen[it] = false
	}
	return touched[:0]
}

func sum(counts []int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
