package linechart

import (
	"image/color"
)

// Surface is the drawing capability a backend offers to Render. Coordinates
// are in pixels with the origin at the top left corner and y growing
// downward. Text is drawn with its baseline at y.
type Surface interface {
	FillBackground(color.Color)
	SetFont(face string, size float64)
	SetColor(color.Color)
	SetLineWidth(float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke() error
	DrawText(x, y float64, str string)
}
