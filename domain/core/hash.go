package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// ComputeTableHash fingerprints a serialized table (headers plus rows)
// so a written artifact can be checked against the data that produced it.
// Cells are joined with unit/record separators to keep the encoding
// unambiguous.
func ComputeTableHash(headers []string, rows [][]string) Hash {
	var data strings.Builder
	for _, h := range headers {
		data.WriteString(h)
		data.WriteString("\x1f")
	}
	data.WriteString("\x1e")
	for _, row := range rows {
		for _, cell := range row {
			data.WriteString(cell)
			data.WriteString("\x1f")
		}
		data.WriteString("\x1e")
	}
	return NewHash([]byte(data.String()))
}
