package linechart

import (
	"fmt"
)

type Point struct {
	X float64
	Y float64
}

func NumberPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Series is the ordered list of points drawn as a single line.
type Series []Point

func NewSeries(xs, ys []float64) (Series, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrSeriesLength, len(xs), len(ys))
	}
	s := make(Series, len(xs))
	for i := range xs {
		s[i] = NumberPoint(xs[i], ys[i])
	}
	return s, nil
}

func (s Series) Len() int {
	return len(s)
}

func (s Series) Xs() []float64 {
	return s.values(func(p Point) float64 { return p.X })
}

func (s Series) Ys() []float64 {
	return s.values(func(p Point) float64 { return p.Y })
}

func (s Series) values(get func(Point) float64) []float64 {
	vs := make([]float64, len(s))
	for i := range s {
		vs[i] = get(s[i])
	}
	return vs
}

// NormalizedPoint is a point in surface coordinates. Value keeps the original
// y for labelling.
type NormalizedPoint struct {
	X     float64
	Y     float64
	Value float64
}
