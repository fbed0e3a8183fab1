package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGBA color in [0, 1].
type Color [4]float32

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	LightGray   = Color{0xaa / 255.0, 0xaa / 255.0, 0xaa / 255.0, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
)

var named = map[string]Color{
	"transparent": Transparent,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"black":       Black,
	"magenta":     Magenta,
	"cyan":        Cyan,
	"yellow":      Yellow,
	"gray":        Gray,
	"grey":        Gray,
	"lightgray":   LightGray,
	"darkgray":    DarkGray,
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// ARGB builds a color from a packed 0xAARRGGBB value.
func ARGB(v uint32) Color {
	return Color{
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
		float32(v>>24&0xff) / 255,
	}
}

// Parse accepts a named color, "#rgb", "#rrggbb" or "#rrggbbaa".
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("colors: unknown color %q", s)
	}

	alpha := float32(1)
	hex := s
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("colors: bad alpha in %q: %w", s, err)
		}
		alpha = float32(a) / 255
		hex = s[:7]
	}
	cf, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("colors: parse %q: %w", s, err)
	}
	return Color{float32(cf.R), float32(cf.G), float32(cf.B), alpha}, nil
}

// MustParse is Parse for literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Colorful drops alpha and returns the go-colorful value.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}
}

// NRGBA converts to an 8-bit straight alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) { return c.NRGBA().RGBA() }

func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
