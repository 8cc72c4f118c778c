package linechart

const (
	DefaultWidth   = 800.0
	DefaultHeight  = 400.0
	DefaultPadding = 30.0
)

type Config struct {
	Width   float64
	Height  float64
	Padding float64

	Style
}

func Default() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: DefaultPadding,
		Style:   DefaultStyle(),
	}
}

func (c Config) ContentArea() (ContentArea, error) {
	return NewContentArea(c.Width, c.Height, c.Padding)
}
