// Package raster renders charts into RGBA images with the gg software
// rasterizer.
package raster

import (
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/midbel/linechart"
)

type Surface struct {
	ctx   *gg.Context
	fonts *fontSet
}

var _ linechart.Surface = (*Surface)(nil)

func New(width, height int) *Surface {
	return &Surface{
		ctx:   gg.NewContext(width, height),
		fonts: newFontSet(),
	}
}

func (s *Surface) Width() int {
	return s.ctx.Width()
}

func (s *Surface) Height() int {
	return s.ctx.Height()
}

func (s *Surface) FillBackground(c color.Color) {
	s.ctx.ClearWithColor(gg.FromColor(c))
}

func (s *Surface) SetFont(face string, size float64) {
	var (
		src *text.FontSource
		err error
	)
	if src, err = s.fonts.Get(face); err != nil {
		linechart.Logger().Warn("font not available, using default face",
			slog.String("face", face),
			slog.String("err", err.Error()),
		)
		src, err = s.fonts.Get(linechart.DefaultFace)
	}
	if err != nil {
		linechart.Logger().Warn("default font not available", slog.String("err", err.Error()))
		return
	}
	s.ctx.SetFont(src.Face(size))
}

func (s *Surface) SetColor(c color.Color) {
	s.ctx.SetColor(c)
}

func (s *Surface) SetLineWidth(width float64) {
	s.ctx.SetLineWidth(width)
}

func (s *Surface) MoveTo(x, y float64) {
	s.ctx.MoveTo(x, y)
}

func (s *Surface) LineTo(x, y float64) {
	s.ctx.LineTo(x, y)
}

func (s *Surface) Stroke() error {
	return s.ctx.Stroke()
}

func (s *Surface) DrawText(x, y float64, str string) {
	s.ctx.DrawString(str, x, y)
}

func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return s.ctx.EncodePNG(w)
}

func (s *Surface) SavePNG(file string) error {
	return s.ctx.SavePNG(file)
}

// Close releases the fonts loaded by the surface. The surface can not draw
// text afterwards.
func (s *Surface) Close() error {
	return s.fonts.Close()
}
