// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// ToRGBA converts any color to non-premultiplied 8-bit RGBA.
func ToRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Blend composites over on top of base using over's alpha and returns an opaque color.
func Blend(base, over color.RGBA) color.RGBA {
	a := float64(over.A) / 255
	mix := func(b, o uint8) uint8 {
		return uint8(float64(o)*a + float64(b)*(1-a) + 0.5)
	}
	return color.RGBA{
		R: mix(base.R, over.R),
		G: mix(base.G, over.G),
		B: mix(base.B, over.B),
		A: 255,
	}
}

// ParseHex parses CSS-style colors: #rgb, #rgba, #rrggbb and #rrggbbaa.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 4:
		var sb strings.Builder
		for _, r := range h {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		h = sb.String()
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
