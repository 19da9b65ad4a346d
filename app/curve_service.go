package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"ovpkit/domain/core"
	"ovpkit/domain/curve"
	"ovpkit/ports"
)

// CurveService builds the smoothed-curve artifacts from midpoints.
type CurveService struct {
	writer   ports.TableWriter
	renderer ports.PreviewRenderer
}

// CurveRequest defines the inputs for one curve build
type CurveRequest struct {
	Midpoints        []curve.Point
	Bands            []curve.Band
	PointsPerSegment int
	DataPath         string // empty skips the workbook write
	PreviewPath      string // empty skips the PNG render
}

// CurveResult contains the complete output of a curve build
type CurveResult struct {
	Table       *curve.Table `json:"table"`
	DataPath    string       `json:"data_path,omitempty"`
	PreviewPath string       `json:"preview_path,omitempty"`
	Fingerprint core.Hash    `json:"fingerprint"`
	RuntimeMs   int64        `json:"runtime_ms"`
}

// NewCurveService creates a curve service
func NewCurveService(writer ports.TableWriter, renderer ports.PreviewRenderer) *CurveService {
	return &CurveService{writer: writer, renderer: renderer}
}

// BuildCurve fits the smoothed curve through the midpoints, masks the
// band columns, and writes the workbook and preview concurrently.
func (s *CurveService) BuildCurve(ctx context.Context, req CurveRequest) (*CurveResult, error) {
	startTime := time.Now()

	if req.PointsPerSegment < 4 {
		return nil, core.ErrBadSampleCount
	}

	table, err := curve.BuildTable(req.Midpoints, req.Bands, req.PointsPerSegment)
	if err != nil {
		return nil, fmt.Errorf("failed to build curve table: %w", err)
	}

	result := &CurveResult{
		Table:       table,
		Fingerprint: core.ComputeTableHash(table.Headers(), table.Rows()),
	}

	g, _ := errgroup.WithContext(ctx)
	if req.DataPath != "" {
		g.Go(func() error {
			return s.writer.WriteCurve(req.DataPath, table)
		})
		result.DataPath = req.DataPath
	}
	if req.PreviewPath != "" {
		g.Go(func() error {
			return s.renderer.RenderPreview(req.PreviewPath, table, req.Midpoints)
		})
		result.PreviewPath = req.PreviewPath
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to write curve artifacts: %w", err)
	}

	result.RuntimeMs = time.Since(startTime).Milliseconds()
	return result, nil
}
