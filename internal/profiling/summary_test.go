package profiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeWeighted(t *testing.T) {
	scores := []float64{2, 4, 6}
	weights := []float64{1, 1, 2}

	summary, err := Summarize(scores, weights)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Count)
	// (2*1 + 4*1 + 6*2) / 4
	assert.InDelta(t, 4.5, summary.WeightedMean, 1e-12)
	assert.Equal(t, 2.0, summary.Min)
	assert.Equal(t, 6.0, summary.Max)
	assert.Equal(t, 4.0, summary.Median)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil, nil)
	assert.Error(t, err)
}

func TestSummarizeLengthMismatch(t *testing.T) {
	_, err := Summarize([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
}
