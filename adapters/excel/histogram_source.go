package excel

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"ovpkit/domain/core"
	"ovpkit/domain/curve"
)

// ReadHistogramTable reads a previously written histogram workbook back
// into curve inputs: one midpoint (midpoint, share) and one band per bin
// row. Raw cell values are used so the percent-formatted share column
// round-trips without display rounding.
func ReadHistogramTable(path string) ([]curve.Point, []curve.Band, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open histogram workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, core.ErrNoValidRows
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[h] = i
	}
	var missing []string
	for _, required := range []string{"Bin Lower", "Bin Upper", "Midpoint", "Range Label", "Share of Total (%)"} {
		if _, ok := idx[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, nil, core.NewMissingColumnError(missing, rows[0])
	}

	cell := func(row []string, name string) string {
		i := idx[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	midpoints := make([]curve.Point, 0, len(rows)-1)
	bands := make([]curve.Band, 0, len(rows)-1)
	for _, row := range rows[1:] {
		mid, ok1 := ParseNumeric(cell(row, "Midpoint"))
		share, ok2 := ParseNumeric(cell(row, "Share of Total (%)"))
		lower, ok3 := ParseNumeric(cell(row, "Bin Lower"))
		upper, ok4 := ParseNumeric(cell(row, "Bin Upper"))
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		midpoints = append(midpoints, curve.Point{X: mid, Y: share})
		bands = append(bands, curve.Band{Lower: lower, Upper: upper, Label: cell(row, "Range Label")})
	}
	if len(midpoints) == 0 {
		return nil, nil, core.ErrNoValidRows
	}

	log.Printf("[DataReader] Histogram workbook %s: %d midpoints", path, len(midpoints))
	return midpoints, bands, nil
}
