package linechart

import (
	"fmt"
	"image/color"
)

const (
	FontSize    = 12.0
	DefaultFace = "sans"
)

type LineStyle struct {
	Color string
	Width float64
}

type TextStyle struct {
	Face string
	Size float64
}

type Style struct {
	Background string
	Grid       LineStyle
	Line       LineStyle
	Text       TextStyle
}

func DefaultStyle() Style {
	return Style{
		Background: "white",
		Grid: LineStyle{
			Color: "lightgray",
			Width: 0.5,
		},
		Line: LineStyle{
			Color: Category10[0],
			Width: 2,
		},
		Text: TextStyle{
			Face: DefaultFace,
			Size: FontSize,
		},
	}
}

type palette struct {
	grid color.Color
	line color.Color
}

func (s Style) background() (color.Color, error) {
	return s.color("background", s.Background)
}

func (s Style) palette() (palette, error) {
	var (
		p   palette
		err error
	)
	if p.grid, err = s.color("grid", s.Grid.Color); err != nil {
		return p, err
	}
	if p.line, err = s.color("line", s.Line.Color); err != nil {
		return p, err
	}
	return p, nil
}

func (s Style) color(what, str string) (color.Color, error) {
	c, err := ParseColor(str)
	if err != nil {
		return nil, fmt.Errorf("%w: %s color: %s", ErrInvalidConfig, what, err)
	}
	return c, nil
}
