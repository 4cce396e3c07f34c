package extension

import (
	"github.com/faraday/borgelt/pkg/occurrence"
	"github.com/faraday/borgelt/pkg/tract"
)

// WOccurrenceExtension is the item-weighted counterpart of
// OccurrenceExtension.
type WOccurrenceExtension struct {
	ItemRef int
	Occ     *occurrence.WeightedOccurrence
}

// WBucket is the item-weighted counterpart of Bucket.
type WBucket struct {
	Supp  tract.Support
	Count int
	Oxs   []WOccurrenceExtension
}

// BuildInitialWeighted is the item-weighted counterpart of BuildInitial.
func BuildInitialWeighted(itemCount int, occs []occurrence.WeightedOccurrence) []WBucket {
	counts := make([]int, itemCount)
	seen := make([]bool, itemCount)
	touched := make([]tract.Item, 0, itemCount)

	for j := range occs {
		for _, it := range occs[j].Items {
			if seen[it.Item] {
				continue
			}
			seen[it.Item] = true
			touched = append(touched, it.Item)
			counts[it.Item]++
		}
		touched = clearSeen(seen, touched)
	}

	buckets := make([]WBucket, itemCount)
	flat := make([]WOccurrenceExtension, sum(counts))
	assignWSlices(buckets, flat, counts)

	for j := range occs {
		o := &occs[j]
		for s, it := range o.Items {
			if seen[it.Item] {
				continue
			}
			seen[it.Item] = true
			touched = append(touched, it.Item)
			b := &buckets[it.Item]
			b.Oxs[b.Count] = WOccurrenceExtension{ItemRef: s, Occ: o}
			b.Count++
			b.Supp += o.Weight
		}
		touched = clearSeen(seen, touched)
	}
	return buckets
}

// AllocConditionalWeighted is the item-weighted counterpart of
// AllocConditional.
func AllocConditionalWeighted(itemCount int, exts []WBucket) []WBucket {
	counts := make([]int, itemCount)
	for k := range exts {
		counts[k] = exts[k].Count
	}
	buckets := make([]WBucket, itemCount)
	flat := make([]WOccurrenceExtension, sum(counts))
	assignWSlices(buckets, flat, counts)
	return buckets
}

// FillConditionalWeighted is the item-weighted counterpart of
// FillConditional.
func FillConditionalWeighted(buckets []WBucket, e *WBucket) int {
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
			it := items[p].Item
			if seen[it] {
				continue
			}
			seen[it] = true
			touched = append(touched, it)
			b := &buckets[it]
			b.Oxs[b.Count] = WOccurrenceExtension{ItemRef: p, Occ: x.Occ}
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

// ResetWeighted is the item-weighted counterpart of Reset.
func ResetWeighted(buckets []WBucket) {
	for i := range buckets {
		buckets[i].Supp = 0
		buckets[i].Count = 0
	}
}

func assignWSlices(buckets []WBucket, flat []WOccurrenceExtension, counts []int) {
	offset := 0
	for i, c := range counts {
		buckets[i].Oxs = flat[offset : offset+c : offset+c]
		offset += c
	}
}
