package linechart

import (
	"fmt"
	"log/slog"

	"github.com/midbel/slices"
)

type Renderer interface {
	Render(Surface, Config, Series) error
}

var _ Renderer = LinearRenderer{}

// LinearRenderer draws the grid of the chart and joins the points of the
// series with straight segments, each point labelled with its y value.
//
// MaxGridLines, when positive, bounds the number of grid lines along each
// axis. A chart needing more fails with ErrInvalidConfig.
type LinearRenderer struct {
	Format       func(float64) string
	MaxGridLines int
}

// Render draws series on surface with the default LinearRenderer.
func Render(surface Surface, cfg Config, series Series) error {
	return LinearRenderer{}.Render(surface, cfg, series)
}

// Render fills the background and selects the font before anything else is
// validated. Only an invalid background color prevents the fill. Any error
// stops drawing and is returned as is.
func (r LinearRenderer) Render(surface Surface, cfg Config, series Series) error {
	bg, err := cfg.background()
	if err != nil {
		return err
	}
	surface.FillBackground(bg)
	surface.SetFont(cfg.Text.Face, cfg.Text.Size)

	pal, err := cfg.palette()
	if err != nil {
		return err
	}
	if len(series) < 2 {
		return fmt.Errorf("%w: %d point(s), at least 2 needed", ErrInsufficientData, len(series))
	}
	area, err := cfg.ContentArea()
	if err != nil {
		return err
	}
	scale, err := ComputeScale(series, area)
	if err != nil {
		return err
	}
	var (
		points = Normalize(series, scale, cfg.Padding, area.Height)
		left   = r.axis(OrientLeft, scale.MaxY, scale.Y)
		bottom = r.axis(OrientBottom, scale.MaxX, scale.X)
	)
	if err := left.check(); err != nil {
		return err
	}
	if err := bottom.check(); err != nil {
		return err
	}
	Logger().Debug("render line chart",
		slog.Int("points", len(points)),
		slog.Float64("width", area.Width),
		slog.Float64("height", area.Height),
		slog.Float64("scale_x", scale.X),
		slog.Float64("scale_y", scale.Y),
	)

	surface.SetColor(pal.grid)
	surface.SetLineWidth(cfg.Grid.Width)
	if err := left.Render(surface, area, cfg.Padding, cfg.Text.Size); err != nil {
		return err
	}
	if err := bottom.Render(surface, area, cfg.Padding, cfg.Text.Size); err != nil {
		return err
	}

	surface.SetColor(pal.line)
	surface.SetLineWidth(cfg.Line.Width)
	return r.drawLine(surface, points, cfg.Text.Size)
}

func (r LinearRenderer) drawLine(surface Surface, points []NormalizedPoint, size float64) error {
	prev := slices.Fst(points)
	r.drawLabel(surface, prev, size)
	for _, pt := range slices.Rest(points) {
		surface.MoveTo(prev.X, prev.Y)
		surface.LineTo(pt.X, pt.Y)
		if err := surface.Stroke(); err != nil {
			return err
		}
		r.drawLabel(surface, pt, size)
		prev = pt
	}
	return nil
}

func (r LinearRenderer) drawLabel(surface Surface, pt NormalizedPoint, size float64) {
	surface.DrawText(pt.X-size/2, pt.Y-size/2, r.format(pt.Value))
}

func (r LinearRenderer) axis(orient Orientation, max, scale float64) gridAxis {
	return gridAxis{
		Orientation: orient,
		Max:         max,
		Scale:       scale,
		Limit:       r.MaxGridLines,
		Format:      r.Format,
	}
}

func (r LinearRenderer) format(f float64) string {
	if r.Format != nil {
		return r.Format(f)
	}
	return formatValue(f)
}
