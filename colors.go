package linechart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

type Palette []string

var Category10 Palette

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa and the SVG color keywords.
func ParseColor(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if !strings.HasPrefix(str, "#") {
		c, ok := colornames.Map[strings.ToLower(str)]
		if !ok {
			return c, fmt.Errorf("%s: unknown color name", str)
		}
		return c, nil
	}
	hex := str[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("%s: invalid color length", str)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%s: invalid color", str)
	}
	c := color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return c, nil
}
