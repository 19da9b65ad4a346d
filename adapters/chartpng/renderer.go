package chartpng

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"ovpkit/domain/curve"
)

// bandPalette supplies the shaded area colors, cycling if there are
// more bands than colors.
var bandPalette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorCyan,
	chart.ColorRed,
	chart.ColorYellow,
}

// Renderer draws the smoothed distribution preview as a PNG.
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a preview renderer with the given canvas size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// RenderPreview renders the shaded band areas, the smoothed curve on
// top of them, and a percent label at each midpoint.
func (r *Renderer) RenderPreview(path string, table *curve.Table, midpoints []curve.Point) error {
	series := make([]chart.Series, 0, len(table.Bands)+2)

	for i, band := range table.Bands {
		xs, ys := bandValues(table.Series, table.Masked[i])
		if len(xs) < 2 {
			continue
		}
		col := bandPalette[i%len(bandPalette)]
		series = append(series, chart.ContinuousSeries{
			Name:    band.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col.WithAlpha(0),
				FillColor:   col.WithAlpha(90),
			},
		})
	}

	xs := make([]float64, len(table.Series))
	ys := make([]float64, len(table.Series))
	for i, p := range table.Series {
		xs[i] = p.X
		ys[i] = p.Y
	}
	series = append(series, chart.ContinuousSeries{
		Name:    "OVP curve",
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			StrokeWidth: 2.2,
		},
	})

	annotations := make([]chart.Value2, 0, len(midpoints))
	for _, m := range midpoints {
		annotations = append(annotations, chart.Value2{
			XValue: m.X,
			YValue: m.Y,
			Label:  fmt.Sprintf("%.0f%%", m.Y*100),
		})
	}
	series = append(series, chart.AnnotationSeries{
		Annotations: annotations,
		Style: chart.Style{
			StrokeColor: chart.ColorAlternateGray,
		},
	})

	ch := chart.Chart{
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 14}},
		XAxis:      chart.XAxis{Name: "Average OVP"},
		YAxis: chart.YAxis{
			Name:           "Share of employees",
			ValueFormatter: percentFormatter,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	defer f.Close()

	if err := ch.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	log.Printf("[Renderer] Preview saved: %s (%dx%d)", path, r.width, r.height)
	return nil
}

// bandValues filters one masked band column down to its contiguous
// non-NaN run; go-chart cannot plot NaN values.
func bandValues(series []curve.Point, masked []float64) (xs, ys []float64) {
	for i, v := range masked {
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, series[i].X)
		ys = append(ys, v)
	}
	return xs, ys
}

func percentFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f%%", f*100)
	}
	return fmt.Sprintf("%v", v)
}
