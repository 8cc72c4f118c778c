// Package config loads chart definitions: the size and style of a chart, its
// values and the files it is rendered to.
package config

import (
	"github.com/midbel/linechart"
)

type Stroke struct {
	Color string  `toml:"color" yaml:"color"`
	Width float64 `toml:"width" yaml:"width"`
}

type Font struct {
	Face string  `toml:"face" yaml:"face"`
	Size float64 `toml:"size" yaml:"size"`
}

type File struct {
	Width      float64 `toml:"width" yaml:"width"`
	Height     float64 `toml:"height" yaml:"height"`
	Padding    float64 `toml:"padding" yaml:"padding"`
	Background string  `toml:"background" yaml:"background"`

	Grid Stroke `toml:"grid" yaml:"grid"`
	Line Stroke `toml:"line" yaml:"line"`
	Font Font   `toml:"font" yaml:"font"`

	X []float64 `toml:"x" yaml:"x"`
	Y []float64 `toml:"y" yaml:"y"`

	Output []string `toml:"output" yaml:"output"`
}

func Default() File {
	cfg := linechart.Default()
	return File{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Padding:    cfg.Padding,
		Background: cfg.Background,
		Grid: Stroke{
			Color: cfg.Grid.Color,
			Width: cfg.Grid.Width,
		},
		Line: Stroke{
			Color: cfg.Line.Color,
			Width: cfg.Line.Width,
		},
		Font: Font{
			Face: cfg.Text.Face,
			Size: cfg.Text.Size,
		},
	}
}

func (f File) Chart() linechart.Config {
	return linechart.Config{
		Width:   f.Width,
		Height:  f.Height,
		Padding: f.Padding,
		Style: linechart.Style{
			Background: f.Background,
			Grid: linechart.LineStyle{
				Color: f.Grid.Color,
				Width: f.Grid.Width,
			},
			Line: linechart.LineStyle{
				Color: f.Line.Color,
				Width: f.Line.Width,
			},
			Text: linechart.TextStyle{
				Face: f.Font.Face,
				Size: f.Font.Size,
			},
		},
	}
}

func (f File) Series() (linechart.Series, error) {
	return linechart.NewSeries(f.X, f.Y)
}
