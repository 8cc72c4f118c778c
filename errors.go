package linechart

import (
	"errors"
)

var (
	ErrEmptySeries      = errors.New("empty series")
	ErrInsufficientData = errors.New("insufficient data")
	ErrDegenerateDomain = errors.New("degenerate domain")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrSeriesLength     = errors.New("x and y values differ in length")
)
