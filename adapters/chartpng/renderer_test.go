package chartpng

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovpkit/domain/curve"
)

func previewTable(t *testing.T) (*curve.Table, []curve.Point) {
	t.Helper()
	mids := []curve.Point{
		{X: 2.5, Y: 0.04},
		{X: 3.5, Y: 0.49},
		{X: 4.5, Y: 0.30},
		{X: 5.5, Y: 0.13},
		{X: 6.5, Y: 0.04},
	}
	bands := []curve.Band{
		{Lower: 2, Upper: 3, Label: "2–3"},
		{Lower: 3, Upper: 4, Label: "3–4"},
		{Lower: 4, Upper: 5, Label: "4–5"},
		{Lower: 5, Upper: 6, Label: "5–6"},
		{Lower: 6, Upper: 7, Label: "6–7"},
	}
	table, err := curve.BuildTable(mids, bands, 20)
	require.NoError(t, err)
	return table, mids
}

func TestRenderPreviewWritesPNG(t *testing.T) {
	table, mids := previewTable(t)
	path := filepath.Join(t.TempDir(), "preview.png")

	err := NewRenderer(800, 500).RenderPreview(path, table, mids)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), "output should be a PNG")
}

func TestBandValuesSkipNaN(t *testing.T) {
	series := []curve.Point{{X: 1, Y: 0.1}, {X: 2, Y: 0.2}, {X: 3, Y: 0.3}}
	masked := []float64{math.NaN(), 0.2, 0.3}

	xs, ys := bandValues(series, masked)
	assert.Equal(t, []float64{2, 3}, xs)
	assert.Equal(t, []float64{0.2, 0.3}, ys)
}
