package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"ovpkit/domain/core"
	"ovpkit/domain/curve"
)

// PipelineService runs the histogram and then the curve from its
// midpoints as a single identified run.
type PipelineService struct {
	histograms *HistogramService
	curves     *CurveService
}

// PipelineRequest defines the inputs for a full run
type PipelineRequest struct {
	Edges            []float64
	ScoreColumn      string
	HeadcountColumn  string
	PointsPerSegment int
	OutDir           string
	// BaseName prefixes every artifact file name, typically the input
	// file name without extension.
	BaseName string
}

// PipelineResult contains the complete output of a full run
type PipelineResult struct {
	RunID     core.RunID       `json:"run_id"`
	Histogram *HistogramResult `json:"histogram"`
	Curve     *CurveResult     `json:"curve"`
	Artifacts []core.Artifact  `json:"artifacts"`
}

// NewPipelineService creates a pipeline service
func NewPipelineService(histograms *HistogramService, curves *CurveService) *PipelineService {
	return &PipelineService{histograms: histograms, curves: curves}
}

// Run executes the full pipeline: histogram from the input table, then
// the smoothed curve through the bin midpoints with bin shares as the
// y values.
func (s *PipelineService) Run(ctx context.Context, req PipelineRequest) (*PipelineResult, error) {
	runID := core.RunID(core.NewID())
	log.Printf("[Pipeline] Run %s starting (base name %q)", runID, req.BaseName)

	histPath := s.artifactPath(req, "ovp_histogram.xlsx")
	histResult, err := s.histograms.BuildHistogram(ctx, HistogramRequest{
		Edges:           req.Edges,
		ScoreColumn:     req.ScoreColumn,
		HeadcountColumn: req.HeadcountColumn,
		OutPath:         histPath,
	})
	if err != nil {
		return nil, fmt.Errorf("histogram stage failed: %w", err)
	}

	xs, ys := histResult.Table.Midpoints()
	midpoints := make([]curve.Point, len(xs))
	bands := make([]curve.Band, len(histResult.Table.Bins))
	for i := range xs {
		midpoints[i] = curve.Point{X: xs[i], Y: ys[i]}
	}
	for i, bin := range histResult.Table.Bins {
		bands[i] = curve.Band{Lower: bin.Lower, Upper: bin.Upper, Label: bin.Label}
	}

	curvePath := s.artifactPath(req, "ovp_curve.xlsx")
	previewPath := s.artifactPath(req, "ovp_curve.png")
	curveResult, err := s.curves.BuildCurve(ctx, CurveRequest{
		Midpoints:        midpoints,
		Bands:            bands,
		PointsPerSegment: req.PointsPerSegment,
		DataPath:         curvePath,
		PreviewPath:      previewPath,
	})
	if err != nil {
		return nil, fmt.Errorf("curve stage failed: %w", err)
	}

	result := &PipelineResult{
		RunID:     runID,
		Histogram: histResult,
		Curve:     curveResult,
		Artifacts: []core.Artifact{
			{ID: core.NewID(), Kind: core.ArtifactHistogram, Path: histPath, Fingerprint: histResult.Fingerprint, CreatedAt: core.Now()},
			{ID: core.NewID(), Kind: core.ArtifactCurveData, Path: curvePath, Fingerprint: curveResult.Fingerprint, CreatedAt: core.Now()},
			{ID: core.NewID(), Kind: core.ArtifactPreview, Path: previewPath, Fingerprint: curveResult.Fingerprint, CreatedAt: core.Now()},
		},
	}

	log.Printf("[Pipeline] Run %s complete: %d artifacts", runID, len(result.Artifacts))
	return result, nil
}

func (s *PipelineService) artifactPath(req PipelineRequest, suffix string) string {
	name := suffix
	if req.BaseName != "" {
		name = fmt.Sprintf("%s - %s", req.BaseName, suffix)
	}
	return filepath.Join(req.OutDir, name)
}
