package linechart

import (
	"fmt"
	"math"
)

// ContentArea is the part of the surface left once padding is removed on
// every side.
type ContentArea struct {
	Width  float64
	Height float64
}

func NewContentArea(width, height, padding float64) (ContentArea, error) {
	area := ContentArea{
		Width:  width - 2*padding,
		Height: height - 2*padding,
	}
	if !(area.Width > 0) || !(area.Height > 0) {
		return area, fmt.Errorf("%w: content area %gx%g (size %gx%g, padding %g)", ErrInvalidConfig, area.Width, area.Height, width, height, padding)
	}
	return area, nil
}

// Scale holds the number of pixels per data unit on each axis.
type Scale struct {
	X    float64
	Y    float64
	MaxX float64
	MaxY float64
}

func ComputeScale(series Series, area ContentArea) (Scale, error) {
	var sc Scale
	if len(series) == 0 {
		return sc, ErrEmptySeries
	}
	for i, pt := range series {
		if !isFinite(pt.X) || !isFinite(pt.Y) {
			return sc, fmt.Errorf("%w: non finite value at index %d (%g, %g)", ErrDegenerateDomain, i, pt.X, pt.Y)
		}
	}
	sc.MaxX = maxOf(series.Xs())
	sc.MaxY = maxOf(series.Ys())
	if sc.MaxX <= 0 {
		return sc, fmt.Errorf("%w: max(x) is %g", ErrDegenerateDomain, sc.MaxX)
	}
	if sc.MaxY <= 0 {
		return sc, fmt.Errorf("%w: max(y) is %g", ErrDegenerateDomain, sc.MaxY)
	}
	sc.X = area.Width / sc.MaxX
	sc.Y = area.Height / sc.MaxY
	return sc, nil
}

// Normalize maps every point of the series in surface coordinates. The y axis
// is inverted: the largest value lands on the top edge of the content area.
func Normalize(series Series, scale Scale, padding, contentHeight float64) []NormalizedPoint {
	list := make([]NormalizedPoint, len(series))
	for i, pt := range series {
		list[i] = NormalizedPoint{
			X:     padding + scale.X*pt.X,
			Y:     padding + contentHeight - scale.Y*pt.Y,
			Value: pt.Y,
		}
	}
	return list
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
