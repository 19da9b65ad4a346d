package histogram

import (
	"fmt"
	"strconv"

	"ovpkit/domain/core"
)

// Record is one cleaned job-title row: the average OVP score for the
// title and the headcount behind it.
type Record struct {
	Title     string
	AvgOVP    float64
	Headcount float64
}

// Bin is a single computed histogram row.
type Bin struct {
	Lower     float64
	Upper     float64
	Midpoint  float64
	Label     string
	Headcount float64
	Share     float64
}

// Table is the complete binned histogram for one run.
type Table struct {
	Bins []Bin
	// TotalHeadcount is the in-range headcount sum and the share
	// denominator. Records whose score falls outside the edges are
	// excluded from it.
	TotalHeadcount float64
	// OutOfRange is the headcount dropped for falling outside the edges.
	OutOfRange float64
}

// DefaultEdges returns the standard OVP bin edges.
func DefaultEdges() []float64 {
	return []float64{2, 3, 4, 5, 6, 7}
}

// ValidateEdges checks that edges form a usable bin layout.
func ValidateEdges(edges []float64) error {
	if len(edges) < 2 {
		return core.ErrBadEdges
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return core.ErrBadEdges
		}
	}
	return nil
}

// RangeLabel formats a bin range the way the output sheets show it,
// with an en dash and trailing zeros trimmed.
func RangeLabel(lower, upper float64) string {
	return fmt.Sprintf("%s–%s", formatEdge(lower), formatEdge(upper))
}

func formatEdge(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Compute bins records by average OVP and weights each bin by the full
// headcount of the records assigned to it. Every bin is half-open
// [lower, upper) except the last, which is closed so the top edge stays
// in range. Shares are computed against the in-range total only.
func Compute(records []Record, edges []float64) (*Table, error) {
	if err := ValidateEdges(edges); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, core.ErrNoValidRows
	}

	bins := make([]Bin, len(edges)-1)
	for i := range bins {
		lo, hi := edges[i], edges[i+1]
		bins[i] = Bin{
			Lower:    lo,
			Upper:    hi,
			Midpoint: (lo + hi) / 2,
			Label:    RangeLabel(lo, hi),
		}
	}

	table := &Table{Bins: bins}
	last := len(bins) - 1
	for _, rec := range records {
		idx := -1
		for i := range bins {
			if rec.AvgOVP >= bins[i].Lower && rec.AvgOVP < bins[i].Upper {
				idx = i
				break
			}
		}
		if idx == -1 && rec.AvgOVP == bins[last].Upper {
			idx = last
		}
		if idx == -1 {
			table.OutOfRange += rec.Headcount
			continue
		}
		bins[idx].Headcount += rec.Headcount
		table.TotalHeadcount += rec.Headcount
	}

	if table.TotalHeadcount > 0 {
		for i := range bins {
			bins[i].Share = bins[i].Headcount / table.TotalHeadcount
		}
	}

	return table, nil
}

// Midpoints returns the (midpoint, share) pair per bin, which is the
// control-point input for the smoothed curve.
func (t *Table) Midpoints() (xs, ys []float64) {
	xs = make([]float64, len(t.Bins))
	ys = make([]float64, len(t.Bins))
	for i, b := range t.Bins {
		xs[i] = b.Midpoint
		ys[i] = b.Share
	}
	return xs, ys
}

// Headers returns the output sheet column headers.
func (t *Table) Headers() []string {
	return []string{"Bin Lower", "Bin Upper", "Midpoint", "Range Label", "Headcount", "Share of Total (%)"}
}

// Rows serializes the table for fingerprinting and reporting.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.Bins))
	for i, b := range t.Bins {
		rows[i] = []string{
			formatFloat(b.Lower),
			formatFloat(b.Upper),
			formatFloat(b.Midpoint),
			b.Label,
			formatFloat(b.Headcount),
			formatFloat(b.Share),
		}
	}
	return rows
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
