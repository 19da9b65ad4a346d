package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 3, 4, 5, 6, 7}, cfg.Histogram.Edges)
	assert.Equal(t, "Average OVP", cfg.Histogram.ScoreColumn)
	assert.Equal(t, "Headcount", cfg.Histogram.HeadcountColumn)
	assert.Equal(t, 60, cfg.Curve.PointsPerSegment)
	assert.Equal(t, ".", cfg.Paths.OutDir)
	assert.Equal(t, 1024, cfg.Chart.Width)
}

func TestLoadCustomEdges(t *testing.T) {
	t.Setenv("OVP_EDGES", "1, 2.5, 4, 6")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 4, 6}, cfg.Histogram.Edges)
}

func TestLoadRejectsBadEdges(t *testing.T) {
	t.Setenv("OVP_EDGES", "5,4,3")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnparseableEdges(t *testing.T) {
	t.Setenv("OVP_EDGES", "2,three,4")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsTinySampleCount(t *testing.T) {
	t.Setenv("OVP_POINTS_PER_SEGMENT", "2")

	_, err := Load()
	assert.Error(t, err)
}
