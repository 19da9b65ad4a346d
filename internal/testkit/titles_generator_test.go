package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecordsDeterministic(t *testing.T) {
	config := DefaultTitlesConfig()

	a := NewTitlesGenerator(config).GenerateRecords()
	b := NewTitlesGenerator(config).GenerateRecords()

	assert.Equal(t, a, b)
}

func TestGenerateRecordsWithinRange(t *testing.T) {
	records := NewTitlesGenerator(DefaultTitlesConfig()).GenerateRecords()
	require.Len(t, records, DefaultTitlesConfig().TitleCount)

	for _, rec := range records {
		assert.GreaterOrEqual(t, rec.AvgOVP, 2.0)
		assert.LessOrEqual(t, rec.AvgOVP, 7.0)
		assert.Greater(t, rec.Headcount, 0.0)
		assert.NotEmpty(t, rec.Title)
	}
}

func TestGenerateRecordsDifferentSeeds(t *testing.T) {
	config := DefaultTitlesConfig()
	a := NewTitlesGenerator(config).GenerateRecords()

	config.Seed = 7
	b := NewTitlesGenerator(config).GenerateRecords()

	assert.NotEqual(t, a, b)
}

func TestMidpointSharesSumToOne(t *testing.T) {
	mids := NewTestKit().Midpoints()

	total := 0.0
	for _, m := range mids {
		total += m.Y
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}
