// Package report defines the engine's output sink contracts (spec.md §4.8)
// and two default implementations grounded on the teacher's own reporting
// code: Collector, grounded on backend/src/factors/pattern's
// PatternService (which likewise accumulates results into an indexed
// slice after a mining run), and TextWriter, grounded on sequoia.c's own
// "hdr"/"sep" line-oriented output formatting.
package report

import "github.com/faraday/borgelt/pkg/tract"

// Reporter is the unweighted-flavor sink. It mirrors the three operations
// sequoia.c's generic item-set reporter exposes (isr_add/isr_report/
// isr_remove) rather than spec.md §4.8's two-operation gloss: Add pushes
// an item onto the running prefix so descendants can extend it (called for
// every item that survives the frequency and closedness gates, whether or
// not it is itself reported — spec.md §4.4 step 3c/3d); Report flushes the
// current running prefix as a found pattern, with the support most
// recently passed to Add (spec.md §4.4 step 3f); Remove truncates the
// running prefix back to length k once a branch has been fully explored.
// See DESIGN.md for why a third operation was added.
type Reporter interface {
	// Add extends the running prefix with item, recording supp as its
	// support for a later Report.
	Add(item tract.Item, supp tract.Support) error
	// Report emits the running prefix (as left by the most recent Add) as
	// a found pattern.
	Report() error
	// Remove truncates the running prefix back to length k.
	Remove(k int) error
	// EmitEmpty reports the empty sequence with the given support.
	EmitEmpty(support tract.Support) error
}

// Result is one reported pattern, as accumulated by Collector.
type Result struct {
	Prefix  []tract.Item
	Support tract.Support
}

type stackEntry struct {
	item tract.Item
	supp tract.Support
}

// Collector is the default unweighted Reporter: it accumulates every
// reported pattern, in report order, into Results.
type Collector struct {
	Results []Result
	stack   []stackEntry
	lengthFilter
}

// NewCollector returns an empty Collector with no length filtering.
func NewCollector() *Collector {
	return NewBoundedCollector(0, -1)
}

// NewBoundedCollector returns an empty Collector that only keeps reported
// prefixes whose length n satisfies minLen <= n (and n <= maxLen, when
// maxLen >= 0).
func NewBoundedCollector(minLen, maxLen int) *Collector {
	return &Collector{lengthFilter: lengthFilter{minLen: minLen, maxLen: maxLen}}
}

func (c *Collector) Add(item tract.Item, supp tract.Support) error {
	c.stack = append(c.stack, stackEntry{item: item, supp: supp})
	return nil
}

func (c *Collector) Report() error {
	if !c.allows(len(c.stack)) {
		return nil
	}
	prefix := make([]tract.Item, len(c.stack))
	for i, e := range c.stack {
		prefix[i] = e.item
	}
	supp := c.stack[len(c.stack)-1].supp
	c.Results = append(c.Results, Result{Prefix: prefix, Support: supp})
	return nil
}

func (c *Collector) Remove(k int) error {
	c.stack = c.stack[:k]
	return nil
}

func (c *Collector) EmitEmpty(support tract.Support) error {
	if !c.allows(0) {
		return nil
	}
	c.Results = append(c.Results, Result{Support: support})
	return nil
}
