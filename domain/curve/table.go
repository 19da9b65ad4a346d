package curve

import (
	"fmt"
	"math"
	"strconv"
)

// bandEdgeEpsilon keeps a sample sitting exactly on an interior edge in
// the right-hand band only.
const bandEdgeEpsilon = 1e-12

// Band is a shaded x-range with its spreadsheet column label.
type Band struct {
	Lower float64
	Upper float64
	Label string
}

// Table is the spreadsheet-ready curve layout: the dense smoothed
// series, one masked y column per band (NaN outside the band, written
// as blank cells), and the midpoint percent labels.
type Table struct {
	Series []Point
	Bands  []Band
	Masked [][]float64 // one column per band, aligned with Series
	Labels []string    // aligned with Series; blank except at midpoints
}

// BuildTable assembles the full curve output for the given midpoints
// and bands.
func BuildTable(midpoints []Point, bands []Band, perSegment int) (*Table, error) {
	series, err := Build(midpoints, perSegment)
	if err != nil {
		return nil, err
	}

	masked := make([][]float64, len(bands))
	for i, band := range bands {
		masked[i] = MaskBand(series, band, i == len(bands)-1)
	}

	return &Table{
		Series: series,
		Bands:  bands,
		Masked: masked,
		Labels: PercentLabels(series, midpoints),
	}, nil
}

// MaskBand returns the series y values inside the band and NaN outside.
// last marks the final band, whose upper edge is inclusive; interior
// upper edges are exclusive so adjacent bands never overlap.
func MaskBand(series []Point, band Band, last bool) []float64 {
	upper := band.Upper
	if !last {
		upper -= bandEdgeEpsilon
	}

	out := make([]float64, len(series))
	for i, p := range series {
		if p.X >= band.Lower && p.X <= upper {
			out[i] = p.Y
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// PercentLabels returns one label per sample: the midpoint share as
// "NN%" at the sample nearest each midpoint's x, blank everywhere else.
func PercentLabels(series []Point, midpoints []Point) []string {
	labels := make([]string, len(series))
	for _, m := range midpoints {
		best := -1
		bestDist := math.Inf(1)
		for i, p := range series {
			if d := math.Abs(p.X - m.X); d < bestDist {
				best, bestDist = i, d
			}
		}
		if best >= 0 {
			labels[best] = fmt.Sprintf("%.0f%%", m.Y*100)
		}
	}
	return labels
}

// Headers returns the output sheet column headers: x, y, one column per
// band, then the label column.
func (t *Table) Headers() []string {
	headers := make([]string, 0, len(t.Bands)+3)
	headers = append(headers, "x", "y")
	for _, band := range t.Bands {
		headers = append(headers, band.Label)
	}
	return append(headers, "labels")
}

// Rows serializes the table for fingerprinting. NaN band cells become
// empty strings, matching how they are written out.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.Series))
	for i, p := range t.Series {
		row := make([]string, 0, len(t.Bands)+3)
		row = append(row, formatFloat(p.X), formatFloat(p.Y))
		for _, col := range t.Masked {
			if math.IsNaN(col[i]) {
				row = append(row, "")
			} else {
				row = append(row, formatFloat(col[i]))
			}
		}
		rows[i] = append(row, t.Labels[i])
	}
	return rows
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
