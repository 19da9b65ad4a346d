package ports

import (
	"ovpkit/domain/histogram"
)

// RecordSource loads cleaned job-title records from an input table.
type RecordSource interface {
	Records(scoreColumn, headcountColumn string) ([]histogram.Record, CleaningStats, error)
}

// CleaningStats reports what row cleaning dropped on the way in.
type CleaningStats struct {
	TotalRows        int `json:"total_rows"`
	DroppedScore     int `json:"dropped_score"`     // unparseable score cells
	DroppedHeadcount int `json:"dropped_headcount"` // unparseable or non-positive headcounts
	Kept             int `json:"kept"`
}
