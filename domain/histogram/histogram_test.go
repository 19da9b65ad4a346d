package histogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovpkit/domain/core"
)

func TestComputeBinsAndShares(t *testing.T) {
	records := []Record{
		{Title: "Analyst", AvgOVP: 2.4, Headcount: 10},
		{Title: "Engineer", AvgOVP: 3.5, Headcount: 30},
		{Title: "Manager", AvgOVP: 3.9, Headcount: 10},
		{Title: "Director", AvgOVP: 6.2, Headcount: 50},
	}

	table, err := Compute(records, DefaultEdges())
	require.NoError(t, err)
	require.Len(t, table.Bins, 5)

	assert.Equal(t, 100.0, table.TotalHeadcount)
	assert.Equal(t, 10.0, table.Bins[0].Headcount)
	assert.Equal(t, 40.0, table.Bins[1].Headcount)
	assert.Equal(t, 0.0, table.Bins[2].Headcount)
	assert.Equal(t, 50.0, table.Bins[4].Headcount)

	assert.InDelta(t, 0.10, table.Bins[0].Share, 1e-12)
	assert.InDelta(t, 0.40, table.Bins[1].Share, 1e-12)
	assert.InDelta(t, 0.50, table.Bins[4].Share, 1e-12)

	assert.Equal(t, "2–3", table.Bins[0].Label)
	assert.Equal(t, "6–7", table.Bins[4].Label)
	assert.Equal(t, 2.5, table.Bins[0].Midpoint)
}

func TestComputeInteriorEdgeGoesToRightBin(t *testing.T) {
	records := []Record{{AvgOVP: 3.0, Headcount: 5}}

	table, err := Compute(records, DefaultEdges())
	require.NoError(t, err)

	assert.Equal(t, 0.0, table.Bins[0].Headcount)
	assert.Equal(t, 5.0, table.Bins[1].Headcount)
}

func TestComputeLastBinInclusive(t *testing.T) {
	records := []Record{{AvgOVP: 7.0, Headcount: 3}}

	table, err := Compute(records, DefaultEdges())
	require.NoError(t, err)

	assert.Equal(t, 3.0, table.Bins[4].Headcount)
	assert.Equal(t, 0.0, table.OutOfRange)
}

func TestComputeOutOfRangeExcludedFromShares(t *testing.T) {
	records := []Record{
		{AvgOVP: 1.2, Headcount: 100}, // below range
		{AvgOVP: 8.0, Headcount: 100}, // above range
		{AvgOVP: 4.5, Headcount: 50},
	}

	table, err := Compute(records, DefaultEdges())
	require.NoError(t, err)

	assert.Equal(t, 50.0, table.TotalHeadcount)
	assert.Equal(t, 200.0, table.OutOfRange)
	assert.InDelta(t, 1.0, table.Bins[2].Share, 1e-12)
}

func TestComputeAllOutOfRangeHasZeroShares(t *testing.T) {
	records := []Record{{AvgOVP: 1.0, Headcount: 10}}

	table, err := Compute(records, DefaultEdges())
	require.NoError(t, err)

	assert.Equal(t, 0.0, table.TotalHeadcount)
	for _, bin := range table.Bins {
		assert.Equal(t, 0.0, bin.Share)
	}
}

func TestComputeEmptyRecords(t *testing.T) {
	_, err := Compute(nil, DefaultEdges())
	assert.ErrorIs(t, err, core.ErrNoValidRows)
}

func TestValidateEdges(t *testing.T) {
	assert.NoError(t, ValidateEdges([]float64{2, 3}))
	assert.ErrorIs(t, ValidateEdges([]float64{2}), core.ErrBadEdges)
	assert.ErrorIs(t, ValidateEdges([]float64{2, 2}), core.ErrBadEdges)
	assert.ErrorIs(t, ValidateEdges([]float64{3, 2}), core.ErrBadEdges)
}

func TestMidpoints(t *testing.T) {
	records := []Record{
		{AvgOVP: 2.5, Headcount: 25},
		{AvgOVP: 4.5, Headcount: 75},
	}

	table, err := Compute(records, DefaultEdges())
	require.NoError(t, err)

	xs, ys := table.Midpoints()
	assert.Equal(t, []float64{2.5, 3.5, 4.5, 5.5, 6.5}, xs)
	assert.InDelta(t, 0.25, ys[0], 1e-12)
	assert.InDelta(t, 0.75, ys[2], 1e-12)
}

func TestRangeLabelTrimsZeros(t *testing.T) {
	assert.Equal(t, "2–3", RangeLabel(2.0, 3.0))
	assert.Equal(t, "2.5–3", RangeLabel(2.5, 3.0))
}
