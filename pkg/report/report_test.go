package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faraday/borgelt/pkg/tract"
)

func TestCollectorAccumulatesPrefixesInAddReportOrder(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.Add(0, 2))
	require.NoError(t, c.Add(1, 2))
	require.NoError(t, c.Report())
	require.NoError(t, c.Remove(1))
	require.NoError(t, c.Report())
	require.NoError(t, c.Remove(0))
	require.NoError(t, c.EmitEmpty(2))

	require.Len(t, c.Results, 3)
	assert.Equal(t, []tract.Item{0, 1}, c.Results[0].Prefix)
	assert.Equal(t, tract.Support(2), c.Results[0].Support)
	assert.Equal(t, []tract.Item{0}, c.Results[1].Prefix)
	assert.Nil(t, c.Results[2].Prefix)
}

func TestBoundedCollectorDropsReportsOutsideLengthBounds(t *testing.T) {
	c := NewBoundedCollector(2, 2)
	require.NoError(t, c.Add(0, 1))
	require.NoError(t, c.Report()) // length 1, below minLen: dropped
	require.NoError(t, c.Add(1, 1))
	require.NoError(t, c.Report()) // length 2: kept
	require.NoError(t, c.Add(2, 1))
	require.NoError(t, c.Report()) // length 3, above maxLen: dropped
	require.NoError(t, c.EmitEmpty(1)) // length 0: dropped

	require.Len(t, c.Results, 1)
	assert.Equal(t, []tract.Item{0, 1}, c.Results[0].Prefix)
}

func TestWeightedCollectorComputesMeansFromWeightSums(t *testing.T) {
	c := NewWeightedCollector()
	require.NoError(t, c.EmitItemset([]tract.Item{0, 1}, []float64{1.0, 3.0}, 2))
	require.NoError(t, c.EmitEmpty(2))

	require.Len(t, c.Results, 2)
	assert.Equal(t, []float64{0.5, 1.5}, c.Results[0].Means)
	assert.Equal(t, tract.Support(2), c.Results[0].Support)
	assert.Nil(t, c.Results[1].Prefix)
}

func TestBoundedWeightedCollectorDropsEmitsOutsideLengthBounds(t *testing.T) {
	c := NewBoundedWeightedCollector(1, -1)
	require.NoError(t, c.EmitEmpty(1))                                   // length 0: dropped
	require.NoError(t, c.EmitItemset([]tract.Item{0}, []float64{1}, 1))  // length 1: kept

	require.Len(t, c.Results, 1)
	assert.Equal(t, []tract.Item{0}, c.Results[0].Prefix)
}

func TestTextWriterFormatsNamedItemsWithSupport(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, []string{"bread", "milk"})
	require.NoError(t, w.Add(0, 5))
	require.NoError(t, w.Add(1, 5))
	require.NoError(t, w.Report())
	require.NoError(t, w.Remove(0))
	require.NoError(t, w.EmitEmpty(9))

	assert.Equal(t, "bread milk (5)\n (9)\n", buf.String())
}

func TestTextWriterFallsBackToIntegerIdsWithoutNames(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, nil)
	require.NoError(t, w.Add(3, 1))
	require.NoError(t, w.Report())

	assert.Equal(t, "3 (1)\n", buf.String())
}

func TestBoundedTextWriterSuppressesLinesOutsideLengthBounds(t *testing.T) {
	var buf bytes.Buffer
	w := NewBoundedTextWriter(&buf, nil, 1, -1)
	require.NoError(t, w.EmitEmpty(4))
	assert.Empty(t, buf.String())

	require.NoError(t, w.Add(0, 4))
	require.NoError(t, w.Report())
	assert.Equal(t, "0 (4)\n", buf.String())
}

func TestWeightedTextWriterFormatsMeansAlongsideSupport(t *testing.T) {
	var buf bytes.Buffer
	w := NewWeightedTextWriter(&buf, []string{"bread", "milk"})
	require.NoError(t, w.EmitItemset([]tract.Item{0, 1}, []float64{1.0, 3.0}, 2))
	require.NoError(t, w.EmitEmpty(2))

	assert.Equal(t, "bread milk (2) 0.50 1.50\n(2)\n", buf.String())
}

func TestBoundedWeightedTextWriterSuppressesLinesOutsideLengthBounds(t *testing.T) {
	var buf bytes.Buffer
	w := NewBoundedWeightedTextWriter(&buf, nil, 0, 1)
	require.NoError(t, w.EmitItemset([]tract.Item{0, 1}, []float64{1, 1}, 1)) // length 2 > maxLen
	assert.Empty(t, buf.String())

	require.NoError(t, w.EmitEmpty(1))
	assert.Equal(t, "(1)\n", buf.String())
}
