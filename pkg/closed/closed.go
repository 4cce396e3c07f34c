// Package closed implements the closedness oracle: given the occurrences
// that produced a just-extended prefix, decide whether, for one of the n
// gaps before each of the prefix's matched positions, some item occurs in
// that gap in every occurrence — in which case the prefix has a proper
// superset with identical support and is not closed.
//
// This is a direct translation of sequoia.c's closed()/closed_iw(); the
// "reached" bookkeeping resets per occurrence (not merely per gap), which
// is what makes the O(touched) restore and the early "if (k<=0) break"
// short-circuit correct — see DESIGN.md for why the English description
// in spec.md §4.5 reads more loosely than the C source actually behaves.
package closed

import (
	"github.com/faraday/borgelt/pkg/extension"
	"github.com/faraday/borgelt/pkg/tract"
)

// Oracle holds the scratch state (item frequency counters and the stack of
// touched item ids) shared across calls within one top-level mining run.
type Oracle struct {
	freq    []int
	touched []tract.Item
}

// New allocates an Oracle sized for itemCount items.
func New(itemCount int) *Oracle {
	return &Oracle{
		freq:    make([]int, itemCount),
		touched: make([]tract.Item, 0, itemCount),
	}
}

func (o *Oracle) bump(v tract.Item, occIndex int) (reached bool) {
	o.freq[v]++
	c := o.freq[v]
	if c <= 1 {
		o.touched = append(o.touched, v)
	}
	return c > occIndex
}

func (o *Oracle) restore() {
	for len(o.touched) > 0 {
		last := o.touched[len(o.touched)-1]
		o.touched = o.touched[:len(o.touched)-1]
		o.freq[last] = 0
	}
}

// Check decides closedness of the prefix of length n produced by bucket e
// (the extensions committed at this depth). Pos[0..n-1] must already be
// written for every occurrence in e.Oxs — the caller commits position n-1
// before calling Check, exactly as sequoia.c's recurse() does.
func (o *Oracle) Check(e *extension.Bucket, n int) bool {
	for k := n - 1; k >= 0; k-- {
		reached := false
		for i := 0; i < e.Count; i++ {
			occ := e.Oxs[i].Occ
			start := 0
			if k > 0 {
				start = occ.Pos[k-1] + 1
			}
			end := occ.Pos[k]
			reached = false
			for s := start; s < end; s++ {
				if o.bump(occ.Items[s], i) {
					reached = true
				}
			}
			if !reached {
				break
			}
		}
		o.restore()
		if reached {
			return false
		}
	}
	return true
}

// CheckWeighted is the item-weighted counterpart of Check.
func (o *Oracle) CheckWeighted(e *extension.WBucket, n int) bool {
	for k := n - 1; k >= 0; k-- {
		reached := false
		for i := 0; i < e.Count; i++ {
			occ := e.Oxs[i].Occ
			start := 0
			if k > 0 {
				start = occ.Pos[k-1] + 1
			}
			end := occ.Pos[k]
			reached = false
			for s := start; s < end; s++ {
				if o.bump(occ.Items[s].Item, i) {
					reached = true
				}
			}
			if !reached {
				break
			}
		}
		o.restore()
		if reached {
			return false
		}
	}
	return true
}
