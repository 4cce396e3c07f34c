package report

// lengthFilter enforces zmin/zmax (spec.md §6) on reported prefix length.
// Both the unweighted and weighted flavors in sequoia.c delegate this to
// the generic item-set reporter (isr_report, configured by
// isr_setsize(report, zmin, zmax)) rather than to the recursion itself —
// the core's own zmax only bounds how deep the recursion descends, an
// optimization distinct from this output-side length gate. maxLen < 0
// means unbounded.
type lengthFilter struct {
	minLen int
	maxLen int
}

func (f lengthFilter) allows(n int) bool {
	if n < f.minLen {
		return false
	}
	if f.maxLen >= 0 && n > f.maxLen {
		return false
	}
	return true
}
