package linechart

import (
	"fmt"
	"math"
	"strconv"
)

type Orientation int

const (
	OrientLeft Orientation = 1 << iota
	OrientBottom
)

// gridAxis draws one grid line per data unit, from 0 up to the truncated
// maximum of the axis. When the maximum is fractional the last line stops
// short of it.
type gridAxis struct {
	Orientation
	Max    float64
	Scale  float64
	Limit  int
	Format func(float64) string
}

func (a gridAxis) Lines() int {
	return int(math.Floor(a.Max)) + 1
}

func (a gridAxis) check() error {
	if n := a.Lines(); a.Limit > 0 && n > a.Limit {
		return fmt.Errorf("%w: %d grid lines needed (max %g), limit is %d", ErrInvalidConfig, n, a.Max, a.Limit)
	}
	return nil
}

func (a gridAxis) Render(s Surface, area ContentArea, padding, size float64) error {
	format := a.Format
	if format == nil {
		format = formatValue
	}
	for i := 0; i < a.Lines(); i++ {
		pos := padding + float64(i)*a.Scale
		switch a.Orientation {
		case OrientLeft:
			if err := a.horizontalLine(s, area, pos, padding); err != nil {
				return err
			}
			s.DrawText(leftMargin(padding, size), pos+size/3, format(a.Max-float64(i)))
		case OrientBottom:
			if err := a.verticalLine(s, area, pos, padding); err != nil {
				return err
			}
			s.DrawText(pos-size/4, padding+area.Height+size*1.2, format(float64(i)))
		}
	}
	return nil
}

func (a gridAxis) horizontalLine(s Surface, area ContentArea, y, padding float64) error {
	s.MoveTo(padding, y)
	s.LineTo(padding+area.Width, y)
	return s.Stroke()
}

func (a gridAxis) verticalLine(s Surface, area ContentArea, x, padding float64) error {
	s.MoveTo(x, padding)
	s.LineTo(x, padding+area.Height)
	return s.Stroke()
}

func leftMargin(padding, size float64) float64 {
	return math.Max(padding-size*2, 0)
}

func formatValue(f float64) string {
	f = math.Round(f*1e6) / 1e6
	return strconv.FormatFloat(f, 'f', -1, 64)
}
