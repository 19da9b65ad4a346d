package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovpkit/domain/core"
)

func fiveMidpoints() []Point {
	return []Point{
		{X: 2.5, Y: 0.04},
		{X: 3.5, Y: 0.27},
		{X: 4.5, Y: 0.45},
		{X: 5.5, Y: 0.20},
		{X: 6.5, Y: 0.04},
	}
}

func TestCatmullRomSegmentsAnchorOnControlPoints(t *testing.T) {
	mids := fiveMidpoints()

	segs, err := CatmullRomToBezier(mids)
	require.NoError(t, err)
	require.Len(t, segs, 4)

	for i, seg := range segs {
		assert.Equal(t, mids[i], seg.P1)
		assert.Equal(t, mids[i+1], seg.P2)
	}
}

func TestCatmullRomTooFewPoints(t *testing.T) {
	_, err := CatmullRomToBezier([]Point{{X: 1, Y: 1}})
	assert.ErrorIs(t, err, core.ErrTooFewPoints)
}

func TestSampleSegmentIncludesEndpoints(t *testing.T) {
	segs, err := CatmullRomToBezier(fiveMidpoints())
	require.NoError(t, err)

	pts, err := SampleSegment(segs[0], 10)
	require.NoError(t, err)
	require.Len(t, pts, 10)

	assert.InDelta(t, segs[0].P1.X, pts[0].X, 1e-12)
	assert.InDelta(t, segs[0].P1.Y, pts[0].Y, 1e-12)
	assert.InDelta(t, segs[0].P2.X, pts[9].X, 1e-12)
	assert.InDelta(t, segs[0].P2.Y, pts[9].Y, 1e-12)
}

func TestSampleSegmentRejectsTinyCounts(t *testing.T) {
	segs, err := CatmullRomToBezier(fiveMidpoints())
	require.NoError(t, err)

	_, err = SampleSegment(segs[0], 3)
	assert.ErrorIs(t, err, core.ErrBadSampleCount)
}

func TestBuildDeduplicatesJoins(t *testing.T) {
	mids := fiveMidpoints()
	perSegment := 60

	series, err := Build(mids, perSegment)
	require.NoError(t, err)

	// 4 segments: first contributes perSegment points, the rest skip
	// their leading join point.
	want := perSegment + 3*(perSegment-1)
	assert.Len(t, series, want)

	for i := 1; i < len(series); i++ {
		assert.LessOrEqual(t, series[i-1].X, series[i].X, "x must be non-decreasing at %d", i)
	}
}

func TestBuildPassesThroughMidpoints(t *testing.T) {
	mids := fiveMidpoints()

	series, err := Build(mids, 50)
	require.NoError(t, err)

	for _, m := range mids {
		found := false
		for _, p := range series {
			if math.Abs(p.X-m.X) < 1e-9 && math.Abs(p.Y-m.Y) < 1e-9 {
				found = true
				break
			}
		}
		assert.True(t, found, "series should pass through midpoint (%v, %v)", m.X, m.Y)
	}
}

func TestBuildSortsMidpointsByX(t *testing.T) {
	mids := fiveMidpoints()
	shuffled := []Point{mids[3], mids[0], mids[4], mids[1], mids[2]}

	a, err := Build(mids, 20)
	require.NoError(t, err)
	b, err := Build(shuffled, 20)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMaskBandInteriorEdgeExclusive(t *testing.T) {
	series := []Point{
		{X: 2.5, Y: 0.1},
		{X: 3.0, Y: 0.2}, // exactly on the interior edge
		{X: 3.5, Y: 0.3},
	}

	left := MaskBand(series, Band{Lower: 2, Upper: 3, Label: "2–3"}, false)
	right := MaskBand(series, Band{Lower: 3, Upper: 4, Label: "3–4"}, false)

	assert.Equal(t, 0.1, left[0])
	assert.True(t, math.IsNaN(left[1]), "edge sample must not land in the left band")
	assert.Equal(t, 0.2, right[1])
	assert.Equal(t, 0.3, right[2])
}

func TestMaskBandLastInclusive(t *testing.T) {
	series := []Point{{X: 7.0, Y: 0.04}}

	last := MaskBand(series, Band{Lower: 6, Upper: 7, Label: "6–7"}, true)
	assert.Equal(t, 0.04, last[0])
}

func TestPercentLabelsNearestSample(t *testing.T) {
	series := []Point{
		{X: 2.4, Y: 0.03},
		{X: 2.6, Y: 0.05},
		{X: 3.4, Y: 0.25},
		{X: 3.55, Y: 0.28},
	}
	mids := []Point{{X: 2.5, Y: 0.04}, {X: 3.5, Y: 0.27}}

	labels := PercentLabels(series, mids)

	assert.Equal(t, "4%", labels[0]) // 2.4 ties are broken by first-nearest
	assert.Equal(t, "", labels[1])
	assert.Equal(t, "", labels[2])
	assert.Equal(t, "27%", labels[3])
}

func TestBuildTableShape(t *testing.T) {
	mids := fiveMidpoints()
	bands := []Band{
		{Lower: 2, Upper: 3, Label: "2–3"},
		{Lower: 3, Upper: 4, Label: "3–4"},
		{Lower: 4, Upper: 5, Label: "4–5"},
		{Lower: 5, Upper: 6, Label: "5–6"},
		{Lower: 6, Upper: 7, Label: "6–7"},
	}

	table, err := BuildTable(mids, bands, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y", "2–3", "3–4", "4–5", "5–6", "6–7", "labels"}, table.Headers())
	assert.Len(t, table.Masked, 5)
	assert.Len(t, table.Labels, len(table.Series))

	rows := table.Rows()
	require.Len(t, rows, len(table.Series))
	assert.Len(t, rows[0], 8)

	// five midpoint labels in total
	labelled := 0
	for _, l := range table.Labels {
		if l != "" {
			labelled++
		}
	}
	assert.Equal(t, 5, labelled)
}
