package app

import (
	"context"
	"fmt"
	"time"

	"ovpkit/domain/core"
	"ovpkit/domain/histogram"
	"ovpkit/internal/profiling"
	"ovpkit/ports"
)

// HistogramService turns an input table into the binned histogram artifact.
type HistogramService struct {
	source ports.RecordSource
	writer ports.TableWriter
}

// HistogramRequest defines the inputs for one histogram build
type HistogramRequest struct {
	Edges           []float64
	ScoreColumn     string
	HeadcountColumn string
	OutPath         string // empty skips the workbook write
}

// HistogramResult contains the complete output of a histogram build
type HistogramResult struct {
	Table        *histogram.Table    `json:"table"`
	Cleaning     ports.CleaningStats `json:"cleaning"`
	Summary      profiling.Summary   `json:"summary"`
	ArtifactPath string              `json:"artifact_path,omitempty"`
	Fingerprint  core.Hash           `json:"fingerprint"`
	RuntimeMs    int64               `json:"runtime_ms"`
}

// NewHistogramService creates a histogram service
func NewHistogramService(source ports.RecordSource, writer ports.TableWriter) *HistogramService {
	return &HistogramService{source: source, writer: writer}
}

// BuildHistogram reads and cleans the input, bins it, and writes the
// histogram workbook.
func (s *HistogramService) BuildHistogram(ctx context.Context, req HistogramRequest) (*HistogramResult, error) {
	startTime := time.Now()

	records, cleaning, err := s.source.Records(req.ScoreColumn, req.HeadcountColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	table, err := histogram.Compute(records, req.Edges)
	if err != nil {
		return nil, fmt.Errorf("failed to compute histogram: %w", err)
	}

	scores := make([]float64, len(records))
	weights := make([]float64, len(records))
	for i, rec := range records {
		scores[i] = rec.AvgOVP
		weights[i] = rec.Headcount
	}
	summary, err := profiling.Summarize(scores, weights)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize scores: %w", err)
	}

	result := &HistogramResult{
		Table:       table,
		Cleaning:    cleaning,
		Summary:     summary,
		Fingerprint: core.ComputeTableHash(table.Headers(), table.Rows()),
	}

	if req.OutPath != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.writer.WriteHistogram(req.OutPath, table); err != nil {
			return nil, fmt.Errorf("failed to write histogram workbook: %w", err)
		}
		result.ArtifactPath = req.OutPath
	}

	result.RuntimeMs = time.Since(startTime).Milliseconds()
	return result, nil
}
