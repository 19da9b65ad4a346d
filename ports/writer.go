package ports

import (
	"ovpkit/domain/curve"
	"ovpkit/domain/histogram"
)

// TableWriter persists computed tables as spreadsheet artifacts.
type TableWriter interface {
	WriteHistogram(path string, table *histogram.Table) error
	WriteCurve(path string, table *curve.Table) error
}

// PreviewRenderer draws the smoothed-curve preview image.
type PreviewRenderer interface {
	RenderPreview(path string, table *curve.Table, midpoints []curve.Point) error
}
