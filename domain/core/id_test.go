package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.False(t, id.IsEmpty())
		assert.False(t, seen[id], "duplicate ID generated: %s", id)
		seen[id] = true
	}
}

func TestParseRunID(t *testing.T) {
	id, err := ParseRunID("run-123")
	assert.NoError(t, err)
	assert.Equal(t, "run-123", id.String())

	_, err = ParseRunID("   ")
	assert.Error(t, err)
}

func TestComputeTableHashDeterministic(t *testing.T) {
	headers := []string{"x", "y"}
	rows := [][]string{{"1", "2"}, {"3", "4"}}

	h1 := ComputeTableHash(headers, rows)
	h2 := ComputeTableHash(headers, rows)
	assert.True(t, h1.Equals(h2))
	assert.False(t, h1.IsEmpty())

	// Moving a cell across a row boundary must change the hash
	h3 := ComputeTableHash(headers, [][]string{{"1", "2", "3"}, {"4"}})
	assert.False(t, h1.Equals(h3))
}
