package closed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/faraday/borgelt/pkg/extension"
	"github.com/faraday/borgelt/pkg/occurrence"
	"github.com/faraday/borgelt/pkg/tract"
)

// items: A=0 B=1 C=2 X=3 Y=4
func TestCheckReturnsClosedWhenNoItemSpansEveryGap(t *testing.T) {
	occABC := &occurrence.Occurrence{Items: []tract.Item{0, 1, 2}, Pos: []int{0, 1}}
	occAXBC := &occurrence.Occurrence{Items: []tract.Item{0, 3, 1, 2}, Pos: []int{0, 2}}
	occAYBC := &occurrence.Occurrence{Items: []tract.Item{0, 4, 1, 2}, Pos: []int{0, 2}}

	e := &extension.Bucket{
		Count: 3,
		Oxs: []extension.OccurrenceExtension{
			{Occ: occABC}, {Occ: occAXBC}, {Occ: occAYBC},
		},
	}

	o := New(5)
	// prefix "AB", n=2: gap 0 is empty everywhere, and A and B sit adjacent
	// in ABC, so gap 1 is empty there and X/Y cannot span it in every
	// occurrence -- closed.
	assert.True(t, o.Check(e, 2))
}

func TestCheckReturnsNotClosedWhenAnItemSpansEveryGap(t *testing.T) {
	// Transaction A B A B, testing prefix "AA" (pos = [0, 2]): the gap between the
	// two A's contains B, and B appears in that gap in the only occurrence, so
	// inserting B there yields a proper superset ("ABA") with the same support.
	occ := &occurrence.Occurrence{Items: []tract.Item{0, 1, 0, 1}, Pos: []int{0, 2}}
	e := &extension.Bucket{
		Count: 1,
		Oxs:   []extension.OccurrenceExtension{{Occ: occ}},
	}

	o := New(2)
	assert.False(t, o.Check(e, 2))
}

func TestCheckIsTriviallyClosedForEmptyGaps(t *testing.T) {
	// Single-item prefix "A" at position 0: gap 0 is empty (nothing before it).
	occ := &occurrence.Occurrence{Items: []tract.Item{0, 1}, Pos: []int{0}}
	e := &extension.Bucket{
		Count: 1,
		Oxs:   []extension.OccurrenceExtension{{Occ: occ}},
	}

	o := New(2)
	assert.True(t, o.Check(e, 1))
}

func TestCheckRestoresScratchBetweenCalls(t *testing.T) {
	occ := &occurrence.Occurrence{Items: []tract.Item{0, 1, 0, 1}, Pos: []int{0, 2}}
	e := &extension.Bucket{
		Count: 1,
		Oxs:   []extension.OccurrenceExtension{{Occ: occ}},
	}

	o := New(2)
	first := o.Check(e, 2)
	second := o.Check(e, 2)
	assert.Equal(t, first, second)
	for _, f := range o.freq {
		assert.Equal(t, 0, f, "scratch frequency table must return to zero between calls")
	}
}
