package excel

import (
	"fmt"
	"log"
	"math"

	"github.com/xuri/excelize/v2"

	"ovpkit/domain/curve"
	"ovpkit/domain/histogram"
)

const (
	histogramSheet = "ovp_histogram"
	curveSheet     = "curve_data"

	// built-in number format "0%"
	percentNumFmt = 9
)

// ArtifactWriter writes run outputs as xlsx workbooks.
type ArtifactWriter struct{}

// NewArtifactWriter creates a workbook writer
func NewArtifactWriter() *ArtifactWriter {
	return &ArtifactWriter{}
}

// WriteHistogram writes the binned histogram to a single-sheet workbook
// with a percent format on the share column and readable column widths.
func (w *ArtifactWriter) WriteHistogram(path string, table *histogram.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", histogramSheet); err != nil {
		return fmt.Errorf("failed to name histogram sheet: %w", err)
	}

	if err := writeHeaderRow(f, histogramSheet, table.Headers()); err != nil {
		return err
	}

	for i, bin := range table.Bins {
		rowIdx := i + 2
		values := []interface{}{bin.Lower, bin.Upper, bin.Midpoint, bin.Label, bin.Headcount, bin.Share}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(histogramSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	pct, err := f.NewStyle(&excelize.Style{NumFmt: percentNumFmt})
	if err != nil {
		return fmt.Errorf("failed to create percent style: %w", err)
	}
	if err := f.SetColStyle(histogramSheet, "F", pct); err != nil {
		return fmt.Errorf("failed to style share column: %w", err)
	}

	// bounds & midpoint, then label/headcount, then share
	if err := f.SetColWidth(histogramSheet, "A", "C", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(histogramSheet, "D", "E", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(histogramSheet, "F", "F", 16); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save histogram workbook: %w", err)
	}

	log.Printf("[ArtifactWriter] Histogram saved: %s (%d bins)", path, len(table.Bins))
	return nil
}

// WriteCurve writes the dense curve series with per-band columns and
// midpoint labels. Masked (NaN) band cells are left blank so chart area
// series stop at the band boundary.
func (w *ArtifactWriter) WriteCurve(path string, table *curve.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", curveSheet); err != nil {
		return fmt.Errorf("failed to name curve sheet: %w", err)
	}

	if err := writeHeaderRow(f, curveSheet, table.Headers()); err != nil {
		return err
	}

	labelCol := len(table.Bands) + 3
	for i, p := range table.Series {
		rowIdx := i + 2

		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		if err := f.SetCellValue(curveSheet, cell, p.X); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
		cell, _ = excelize.CoordinatesToCellName(2, rowIdx)
		if err := f.SetCellValue(curveSheet, cell, p.Y); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}

		for b, col := range table.Masked {
			if math.IsNaN(col[i]) {
				continue
			}
			cell, _ = excelize.CoordinatesToCellName(b+3, rowIdx)
			if err := f.SetCellValue(curveSheet, cell, col[i]); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}

		if table.Labels[i] != "" {
			cell, _ = excelize.CoordinatesToCellName(labelCol, rowIdx)
			if err := f.SetCellValue(curveSheet, cell, table.Labels[i]); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save curve workbook: %w", err)
	}

	log.Printf("[ArtifactWriter] Curve data saved: %s (%d samples, %d bands)",
		path, len(table.Series), len(table.Bands))
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %s: %w", cell, err)
		}
	}
	return nil
}
