// Package vector renders charts as SVG documents.
package vector

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/midbel/linechart"
	"github.com/midbel/svg"
)

type Surface struct {
	width  float64
	height float64

	elements  []svg.Element
	face      string
	font      svg.Font
	color     string
	opacity   float64
	lineWidth float64
	path      svg.Path
	pending   bool
}

var _ linechart.Surface = (*Surface)(nil)

func New(width, height float64) *Surface {
	return &Surface{
		width:     width,
		height:    height,
		font:      svg.NewFont(linechart.FontSize),
		face:      linechart.DefaultFace,
		color:     "black",
		opacity:   1,
		lineWidth: 1,
	}
}

func (s *Surface) FillBackground(c color.Color) {
	var (
		hex, opacity = toHex(c)
		rec          = svg.NewRect(svg.WithDimension(s.width, s.height))
	)
	rec.Fill = svg.NewFill(hex)
	rec.Fill.Opacity = opacity
	s.elements = append(s.elements, rec.AsElement())
}

func (s *Surface) SetFont(face string, size float64) {
	s.face = face
	s.font = svg.NewFont(size)
}

func (s *Surface) SetColor(c color.Color) {
	s.color, s.opacity = toHex(c)
}

func (s *Surface) SetLineWidth(width float64) {
	s.lineWidth = width
}

func (s *Surface) MoveTo(x, y float64) {
	if !s.pending {
		s.path = svg.NewPath()
		s.pending = true
	}
	s.path.AbsMoveTo(svg.NewPos(x, y))
}

func (s *Surface) LineTo(x, y float64) {
	if !s.pending {
		s.MoveTo(x, y)
		return
	}
	s.path.AbsLineTo(svg.NewPos(x, y))
}

func (s *Surface) Stroke() error {
	if !s.pending {
		return nil
	}
	stroke := svg.NewStroke(s.color, s.lineWidth)
	stroke.Opacity = s.opacity

	s.path.Rendering = "geometricPrecision"
	s.path.Stroke = stroke
	s.path.Fill = svg.NewFill("none")
	s.elements = append(s.elements, s.path.AsElement())
	s.pending = false
	return nil
}

func (s *Surface) DrawText(x, y float64, str string) {
	fill := svg.NewFill(s.color)
	fill.Opacity = s.opacity

	options := []svg.Option{
		svg.WithFont(s.font),
		svg.WithPosition(x, y),
		svg.WithFill(fill),
	}
	text := svg.NewText(str, options...)
	s.elements = append(s.elements, text.AsElement())
}

// WriteTo writes the SVG document holding everything drawn so far.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	el := svg.NewSVG(svg.WithDimension(s.width, s.height))
	el.OmitProlog = true

	grp := svg.NewGroup(svg.WithID("chart"))
	grp.Class = append(grp.Class, "linechart", "font-"+s.face)
	for _, e := range s.elements {
		grp.Append(e)
	}
	el.Append(grp.AsElement())

	cw := countWriter{w: w}
	bw := bufio.NewWriter(&cw)
	el.Render(bw)
	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

func toHex(c color.Color) (string, float64) {
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	hex := fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	return hex, float64(rgba.A) / 0xff
}
