package traffic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplanner/traffic"
)

func TestPenaltyIsOrderIndependent(t *testing.T) {
	tbl := traffic.NewTable()
	require.NoError(t, tbl.Set("C", "B", 8))

	assert.Equal(t, 8.0, tbl.Penalty("B", "C"))
	assert.Equal(t, 8.0, tbl.Penalty("C", "B"))
	assert.Zero(t, tbl.Penalty("A", "B"))
}

func TestPenaltyPrefersExactOrdering(t *testing.T) {
	tbl := traffic.NewTable()
	require.NoError(t, tbl.Set("B", "C", 8))
	require.NoError(t, tbl.Set("C", "B", 3))

	assert.Equal(t, 8.0, tbl.Penalty("B", "C"))
	assert.Equal(t, 3.0, tbl.Penalty("C", "B"))
}

func TestNilAndEmptyTables(t *testing.T) {
	var nilTable *traffic.Table
	assert.Zero(t, nilTable.Penalty("A", "B"))
	assert.Zero(t, nilTable.Len())
	assert.Nil(t, nilTable.Entries())

	assert.Zero(t, traffic.NewTable().Penalty("A", "B"))
}

func TestSetValidation(t *testing.T) {
	tbl := traffic.NewTable()
	assert.ErrorIs(t, tbl.Set("A", "B", -1), traffic.ErrNegativePenalty)
	assert.ErrorIs(t, tbl.Set("", "B", 1), traffic.ErrEmptyLocation)
	assert.Zero(t, tbl.Len())

	// Zero is a valid (no-op) penalty.
	require.NoError(t, tbl.Set("A", "B", 0))
	assert.Equal(t, 1, tbl.Len())
}

func TestFromEntries(t *testing.T) {
	tbl, err := traffic.FromEntries([]traffic.Entry{
		{Pair: traffic.Pair{From: "H", To: "F"}, Penalty: 12},
		{Pair: traffic.Pair{From: "B", To: "C"}, Penalty: 8},
	})
	require.NoError(t, err)
	assert.Equal(t, []traffic.Entry{
		{Pair: traffic.Pair{From: "B", To: "C"}, Penalty: 8},
		{Pair: traffic.Pair{From: "H", To: "F"}, Penalty: 12},
	}, tbl.Entries())

	_, err = traffic.FromEntries([]traffic.Entry{{Pair: traffic.Pair{From: "A", To: "B"}, Penalty: -3}})
	assert.ErrorIs(t, err, traffic.ErrNegativePenalty)
}
