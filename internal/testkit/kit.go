package testkit

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ovpkit/domain/curve"
	"ovpkit/domain/histogram"
)

// TestKit provides fixtures for exercising the pipeline end to end.
type TestKit struct {
	generator *TitlesGenerator
}

// NewTestKit creates a new test kit with the default generator
func NewTestKit() *TestKit {
	return &TestKit{generator: NewTitlesGenerator(DefaultTitlesConfig())}
}

// Records returns the deterministic synthetic record set.
func (k *TestKit) Records() []histogram.Record {
	return k.generator.GenerateRecords()
}

// Midpoints returns the canonical five-point fixture used across tests:
// histogram midpoints with shares summing to 1.
func (k *TestKit) Midpoints() []curve.Point {
	return []curve.Point{
		{X: 2.5, Y: 0.04},
		{X: 3.5, Y: 0.49},
		{X: 4.5, Y: 0.30},
		{X: 5.5, Y: 0.13},
		{X: 6.5, Y: 0.04},
	}
}

// WriteSampleWorkbook writes a synthetic input workbook with the exact
// column names the reader expects.
func (k *TestKit) WriteSampleWorkbook(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Job Title", "Average OVP", "Headcount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %s: %w", cell, err)
		}
	}

	for i, rec := range k.Records() {
		rowIdx := i + 2
		values := []interface{}{rec.Title, rec.AvgOVP, rec.Headcount}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	return f.SaveAs(path)
}
