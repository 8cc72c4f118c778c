package linechart

import (
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  color.Color
	Width  float64
}

type label struct {
	X, Y  float64
	Text  string
	Color color.Color
}

type recorder struct {
	Ops        []string
	Background color.Color
	Face       string
	Size       float64
	Segments   []segment
	Labels     []label

	color  color.Color
	width  float64
	path   [][2]float64
	failAt int
}

func (r *recorder) FillBackground(c color.Color) {
	r.Ops = append(r.Ops, "background")
	r.Background = c
}

func (r *recorder) SetFont(face string, size float64) {
	r.Ops = append(r.Ops, "font")
	r.Face, r.Size = face, size
}

func (r *recorder) SetColor(c color.Color) {
	r.Ops = append(r.Ops, "color")
	r.color = c
}

func (r *recorder) SetLineWidth(w float64) {
	r.Ops = append(r.Ops, "width")
	r.width = w
}

func (r *recorder) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, "move")
	r.path = [][2]float64{{x, y}}
}

func (r *recorder) LineTo(x, y float64) {
	r.Ops = append(r.Ops, "line")
	r.path = append(r.path, [2]float64{x, y})
}

func (r *recorder) Stroke() error {
	r.Ops = append(r.Ops, "stroke")
	if r.failAt > 0 && len(r.Segments)+1 == r.failAt {
		return errors.New("stroke failed")
	}
	for i := 1; i < len(r.path); i++ {
		r.Segments = append(r.Segments, segment{
			X1:    r.path[i-1][0],
			Y1:    r.path[i-1][1],
			X2:    r.path[i][0],
			Y2:    r.path[i][1],
			Color: r.color,
			Width: r.width,
		})
	}
	r.path = nil
	return nil
}

func (r *recorder) DrawText(x, y float64, str string) {
	r.Ops = append(r.Ops, "text")
	r.Labels = append(r.Labels, label{X: x, Y: y, Text: str, Color: r.color})
}

func (r *recorder) segmentsWith(c color.Color) []segment {
	var list []segment
	for _, s := range r.Segments {
		if s.Color == c {
			list = append(list, s)
		}
	}
	return list
}

func (r *recorder) labelsWith(c color.Color) []string {
	var list []string
	for _, l := range r.Labels {
		if l.Color == c {
			list = append(list, l.Text)
		}
	}
	return list
}

func testConfig() Config {
	cfg := Default()
	cfg.Grid.Color = "#cccccc"
	cfg.Line.Color = "#0000ff"
	return cfg
}

var (
	gridColor = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	lineColor = color.RGBA{B: 0xff, A: 0xff}
)

func TestRenderTutorial(t *testing.T) {
	var (
		rec    recorder
		cfg    = testConfig()
		series = tutorialSeries(t)
	)
	require.NoError(t, Render(&rec, cfg, series))

	assert.Equal(t, []string{"background", "font"}, rec.Ops[:2])
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, rec.Background)
	assert.Equal(t, DefaultFace, rec.Face)
	assert.Equal(t, FontSize, rec.Size)

	grid := rec.segmentsWith(gridColor)
	require.Len(t, grid, 15+10)

	var (
		horizontal = grid[:15]
		vertical   = grid[15:]
		labels     = rec.labelsWith(gridColor)
	)
	for i, s := range horizontal {
		y := 30 + float64(i)*340/14
		assert.InDelta(t, y, s.Y1, tolerance)
		assert.InDelta(t, y, s.Y2, tolerance)
		assert.InDelta(t, 30, s.X1, tolerance)
		assert.InDelta(t, 770, s.X2, tolerance)
		assert.Equal(t, cfg.Grid.Width, s.Width)
	}
	for i, s := range vertical {
		x := 30 + float64(i)*740/9
		assert.InDelta(t, x, s.X1, tolerance)
		assert.InDelta(t, x, s.X2, tolerance)
		assert.InDelta(t, 30, s.Y1, tolerance)
		assert.InDelta(t, 370, s.Y2, tolerance)
	}
	require.Len(t, labels, 25)
	for i := 0; i <= 14; i++ {
		assert.Equal(t, fmt.Sprint(14-i), labels[i])
	}
	for i := 0; i <= 9; i++ {
		assert.Equal(t, fmt.Sprint(i), labels[15+i])
	}

	line := rec.segmentsWith(lineColor)
	require.Len(t, line, len(series)-1)
	assert.InDelta(t, 30, line[0].X1, tolerance)
	assert.InDelta(t, 370, line[0].Y1, tolerance)
	assert.InDelta(t, 770, line[len(line)-1].X2, tolerance)
	assert.InDelta(t, 30, line[len(line)-1].Y2, tolerance)
	for i := 1; i < len(line); i++ {
		assert.Equal(t, line[i-1].X2, line[i].X1)
		assert.Equal(t, line[i-1].Y2, line[i].Y1)
		assert.Equal(t, cfg.Line.Width, line[i].Width)
	}
	assert.Equal(t, []string{"0", "3", "5", "4", "3", "6", "6", "7", "14"}, rec.labelsWith(lineColor))
}

func TestRenderTwoPoints(t *testing.T) {
	var rec recorder
	series := Series{{X: 1, Y: 1}, {X: 2, Y: 4}}
	require.NoError(t, Render(&rec, testConfig(), series))

	assert.Len(t, rec.segmentsWith(lineColor), 1)
	assert.Equal(t, []string{"1", "4"}, rec.labelsWith(lineColor))
}

func TestRenderFractionalMaximum(t *testing.T) {
	var rec recorder
	series := Series{{X: 0, Y: 0}, {X: 2.5, Y: 3.5}}
	require.NoError(t, Render(&rec, testConfig(), series))

	grid := rec.segmentsWith(gridColor)
	require.Len(t, grid, 4+3)
	assert.Equal(t, []string{"3.5", "2.5", "1.5", "0.5", "0", "1", "2"}, rec.labelsWith(gridColor))

	area, err := testConfig().ContentArea()
	require.NoError(t, err)
	assert.Less(t, grid[3].Y1, 30+area.Height, "last horizontal line stops above the bottom edge")
}

func TestRenderIdempotent(t *testing.T) {
	var (
		r1     recorder
		r2     recorder
		cfg    = testConfig()
		series = tutorialSeries(t)
	)
	require.NoError(t, Render(&r1, cfg, series))
	require.NoError(t, Render(&r2, cfg, series))
	assert.Equal(t, r1.Ops, r2.Ops)
	assert.Equal(t, r1.Segments, r2.Segments)
	assert.Equal(t, r1.Labels, r2.Labels)
}

func TestRenderErrors(t *testing.T) {
	small := testConfig()
	small.Width, small.Height = 50, 50

	badLine := testConfig()
	badLine.Line.Color = "#zzzzzz"

	badGrid := testConfig()
	badGrid.Grid.Color = "nope"

	badBackground := testConfig()
	badBackground.Background = "nope"

	tests := []struct {
		Name   string
		Config Config
		Series Series
		Err    error
		Ops    []string
	}{
		{
			Name:   "empty",
			Config: testConfig(),
			Err:    ErrInsufficientData,
			Ops:    []string{"background", "font"},
		},
		{
			Name:   "one point",
			Config: testConfig(),
			Series: Series{{X: 1, Y: 1}},
			Err:    ErrInsufficientData,
			Ops:    []string{"background", "font"},
		},
		{
			Name:   "all zero",
			Config: testConfig(),
			Series: Series{{X: 1, Y: 0}, {X: 2, Y: 0}},
			Err:    ErrDegenerateDomain,
			Ops:    []string{"background", "font"},
		},
		{
			Name:   "content area",
			Config: small,
			Series: Series{{X: 1, Y: 1}, {X: 2, Y: 2}},
			Err:    ErrInvalidConfig,
			Ops:    []string{"background", "font"},
		},
		{
			Name:   "bad line color",
			Config: badLine,
			Series: Series{{X: 1, Y: 1}, {X: 2, Y: 2}},
			Err:    ErrInvalidConfig,
			Ops:    []string{"background", "font"},
		},
		{
			Name:   "bad grid color",
			Config: badGrid,
			Series: Series{{X: 1, Y: 1}, {X: 2, Y: 2}},
			Err:    ErrInvalidConfig,
			Ops:    []string{"background", "font"},
		},
		{
			Name:   "bad background",
			Config: badBackground,
			Series: Series{{X: 1, Y: 1}, {X: 2, Y: 2}},
			Err:    ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			var rec recorder
			err := Render(&rec, tt.Config, tt.Series)
			assert.ErrorIs(t, err, tt.Err)
			assert.Equal(t, tt.Ops, rec.Ops)
		})
	}
}

func TestRenderStrokeError(t *testing.T) {
	rec := recorder{failAt: 3}
	err := Render(&rec, testConfig(), tutorialSeries(t))
	require.Error(t, err)
	assert.Len(t, rec.Segments, 2)
	assert.Len(t, rec.Labels, 2, "no label after the failed line")
	assert.Equal(t, "stroke", rec.Ops[len(rec.Ops)-1])
}

func TestRenderLargeMaximum(t *testing.T) {
	var rec recorder
	series := Series{{X: 1, Y: 1}, {X: 2, Y: 5000}}
	require.NoError(t, Render(&rec, testConfig(), series))
	assert.Len(t, rec.segmentsWith(gridColor), 5001+3)
	assert.Len(t, rec.segmentsWith(lineColor), 1)
}

func TestRenderGridLimit(t *testing.T) {
	var (
		rec    recorder
		r      = LinearRenderer{MaxGridLines: 100}
		series = Series{{X: 1, Y: 1}, {X: 2, Y: 5000}}
	)
	err := r.Render(&rec, testConfig(), series)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, []string{"background", "font"}, rec.Ops)

	rec = recorder{}
	require.NoError(t, r.Render(&rec, testConfig(), tutorialSeries(t)))
	assert.Len(t, rec.segmentsWith(gridColor), 15+10)
}

func TestRenderCustomFormat(t *testing.T) {
	var rec recorder
	r := LinearRenderer{
		Format: func(f float64) string {
			return fmt.Sprintf("%.1f", f)
		},
	}
	require.NoError(t, r.Render(&rec, testConfig(), Series{{X: 1, Y: 1}, {X: 2, Y: 2}}))
	assert.Equal(t, []string{"1.0", "2.0"}, rec.labelsWith(lineColor))
	assert.Equal(t, []string{"2.0", "1.0", "0.0", "0.0", "1.0", "2.0"}, rec.labelsWith(gridColor))
}
