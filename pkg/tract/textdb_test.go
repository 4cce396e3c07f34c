package tract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTextRecodesItemsInFirstSeenOrder(t *testing.T) {
	db, names, err := ReadText(strings.NewReader("A B C\nA X B C\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "X"}, names)
	assert.Equal(t, 4, db.ItemCount())
	assert.Equal(t, 2, db.TransactionCount())
	assert.Equal(t, Support(2), db.TotalWeight())
	assert.Equal(t, []Item{0, 1, 2}, db.Items(0))
	assert.Equal(t, []Item{0, 3, 1, 2}, db.Items(1))
	assert.Equal(t, 7, db.Extent())
}

func TestReadTextParsesTrailingWeight(t *testing.T) {
	db, _, err := ReadText(strings.NewReader("A B #3\n"))
	require.NoError(t, err)
	assert.Equal(t, Support(3), db.Weight(0))
	assert.Equal(t, Support(3), db.TotalWeight())
}

func TestReadTextSkipsBlankAndCommentLines(t *testing.T) {
	db, _, err := ReadText(strings.NewReader("\n# a comment\nA B\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, db.TransactionCount())
}

func TestReadTextRejectsMalformedWeight(t *testing.T) {
	_, _, err := ReadText(strings.NewReader("A B #abc\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestReadWeightedTextParsesPerItemWeights(t *testing.T) {
	db, names, err := ReadWeightedText(strings.NewReader("A:0.5 B:1.0\nA:1.5 B:3.0\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names)
	items0 := db.Items(0)
	require.Len(t, items0, 2)
	assert.Equal(t, WeightedItem{Item: 0, Weight: 0.5}, items0[0])
	assert.Equal(t, WeightedItem{Item: 1, Weight: 1.0}, items0[1])
	assert.Equal(t, Support(2), db.TotalWeight())
}

func TestReadWeightedTextDefaultsItemWeightToOne(t *testing.T) {
	db, _, err := ReadWeightedText(strings.NewReader("A B\n"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, db.Items(0)[0].Weight)
	assert.Equal(t, 1.0, db.Items(0)[1].Weight)
}
