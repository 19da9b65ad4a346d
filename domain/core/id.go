package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	RunID      ID
	ArtifactID ID
)

func (id RunID) String() string      { return ID(id).String() }
func (id ArtifactID) String() string { return ID(id).String() }

// ParseRunID parses a string into RunID
func ParseRunID(s string) (RunID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("run ID cannot be empty")
	}
	return RunID(s), nil
}

// Artifact represents any file output of a run
type Artifact struct {
	ID          ID           `json:"id"`
	Kind        ArtifactKind `json:"kind"`
	Path        string       `json:"path"`
	Fingerprint Hash         `json:"fingerprint"`
	CreatedAt   Timestamp    `json:"created_at"`
}

// ArtifactKind defines types of artifacts
type ArtifactKind string

const (
	// ArtifactHistogram is the binned histogram workbook.
	ArtifactHistogram ArtifactKind = "histogram"
	// ArtifactCurveData is the spreadsheet-ready smoothed-curve workbook.
	ArtifactCurveData ArtifactKind = "curve_data"
	// ArtifactPreview is the rendered PNG of the smoothed curve.
	ArtifactPreview ArtifactKind = "preview"
	// ArtifactReport is the markdown/HTML run report.
	ArtifactReport ArtifactKind = "report"
)
