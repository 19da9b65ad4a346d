package curve

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"ovpkit/domain/core"
)

// Point is a single (x, y) coordinate on the curve.
type Point struct {
	X float64
	Y float64
}

// BezierSegment is one cubic Bezier span: endpoints P1/P2 with control
// points C1/C2.
type BezierSegment struct {
	P1, C1, C2, P2 Point
}

// CatmullRomToBezier converts an open Catmull-Rom spline (tension 0)
// through the given points into cubic Bezier segments. The endpoints
// are extended by mirroring, which reproduces the look of Excel's
// smoothed line.
func CatmullRomToBezier(points []Point) ([]BezierSegment, error) {
	n := len(points)
	if n < 2 {
		return nil, core.ErrTooFewPoints
	}

	ext := make([]Point, n+2)
	copy(ext[1:], points)
	ext[0] = Point{
		X: 2*points[0].X - points[1].X,
		Y: 2*points[0].Y - points[1].Y,
	}
	ext[n+1] = Point{
		X: 2*points[n-1].X - points[n-2].X,
		Y: 2*points[n-1].Y - points[n-2].Y,
	}

	segs := make([]BezierSegment, 0, n-1)
	for i := 1; i < n; i++ {
		p0, p1, p2, p3 := ext[i-1], ext[i], ext[i+1], ext[i+2]
		c1 := Point{X: p1.X + (p2.X-p0.X)/6.0, Y: p1.Y + (p2.Y-p0.Y)/6.0}
		c2 := Point{X: p2.X - (p3.X-p1.X)/6.0, Y: p2.Y - (p3.Y-p1.Y)/6.0}
		segs = append(segs, BezierSegment{P1: p1, C1: c1, C2: c2, P2: p2})
	}
	return segs, nil
}

// SampleSegment evaluates one cubic Bezier at n evenly spaced parameter
// values, including both endpoints.
func SampleSegment(seg BezierSegment, n int) ([]Point, error) {
	if n < 4 {
		return nil, core.ErrBadSampleCount
	}

	t := make([]float64, n)
	floats.Span(t, 0, 1)

	pts := make([]Point, n)
	for i, tv := range t {
		u := 1 - tv
		b0 := u * u * u
		b1 := 3 * u * u * tv
		b2 := 3 * u * tv * tv
		b3 := tv * tv * tv
		pts[i] = Point{
			X: b0*seg.P1.X + b1*seg.C1.X + b2*seg.C2.X + b3*seg.P2.X,
			Y: b0*seg.P1.Y + b1*seg.C1.Y + b2*seg.C2.Y + b3*seg.P2.Y,
		}
	}
	return pts, nil
}

// Build produces the dense smoothed series through the midpoints.
// Midpoints are sorted by x first; each interior join point is emitted
// only once.
func Build(midpoints []Point, perSegment int) ([]Point, error) {
	mids := make([]Point, len(midpoints))
	copy(mids, midpoints)
	sort.Slice(mids, func(i, j int) bool { return mids[i].X < mids[j].X })

	segs, err := CatmullRomToBezier(mids)
	if err != nil {
		return nil, err
	}

	series := make([]Point, 0, len(segs)*perSegment)
	for i, seg := range segs {
		pts, err := SampleSegment(seg, perSegment)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			// the previous segment already emitted this join point
			pts = pts[1:]
		}
		series = append(series, pts...)
	}
	return series, nil
}
