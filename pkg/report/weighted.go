package report

import "github.com/faraday/borgelt/pkg/tract"

// ItemsetReporter is the item-weighted-flavor sink: one-shot emission per
// reported prefix (spec.md §4.8), since the weighted flavor has no stable
// notion of "the current prefix" to incrementally add/remove from — each
// emission already carries its own full prefix and per-position weight
// sums. The reporter, not the engine, divides by supp to get the mean,
// per spec.md §4.6.
type ItemsetReporter interface {
	// EmitItemset reports prefix with per-position weight sums wgtSums
	// (len(wgtSums) == len(prefix)) and support supp.
	EmitItemset(prefix []tract.Item, wgtSums []float64, supp tract.Support) error
	// EmitEmpty reports the empty sequence with the given support.
	EmitEmpty(support tract.Support) error
}

// ItemResult is one reported weighted pattern, as accumulated by
// WeightedCollector. Means is nil for the empty-sequence result.
type ItemResult struct {
	Prefix  []tract.Item
	Means   []float64
	Support tract.Support
}

// WeightedCollector is the default ItemsetReporter.
type WeightedCollector struct {
	Results []ItemResult
	lengthFilter
}

// NewWeightedCollector returns an empty WeightedCollector with no length
// filtering.
func NewWeightedCollector() *WeightedCollector {
	return NewBoundedWeightedCollector(0, -1)
}

// NewBoundedWeightedCollector is the weighted counterpart of
// NewBoundedCollector.
func NewBoundedWeightedCollector(minLen, maxLen int) *WeightedCollector {
	return &WeightedCollector{lengthFilter: lengthFilter{minLen: minLen, maxLen: maxLen}}
}

func (c *WeightedCollector) EmitItemset(prefix []tract.Item, wgtSums []float64, supp tract.Support) error {
	if !c.allows(len(prefix)) {
		return nil
	}
	pfx := make([]tract.Item, len(prefix))
	copy(pfx, prefix)
	means := make([]float64, len(wgtSums))
	for i, s := range wgtSums {
		means[i] = s / float64(supp)
	}
	c.Results = append(c.Results, ItemResult{Prefix: pfx, Means: means, Support: supp})
	return nil
}

func (c *WeightedCollector) EmitEmpty(support tract.Support) error {
	if !c.allows(0) {
		return nil
	}
	c.Results = append(c.Results, ItemResult{Support: support})
	return nil
}
