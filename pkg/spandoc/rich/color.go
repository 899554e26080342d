package rich

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 32-bit ARGB value.
type Color uint32

const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
	Yellow      Color = 0xFFFFFF00
)

// namedColors is the highlight palette. Names outside it fall back to Black.
var namedColors = map[string]Color{
	"red":    Red,
	"yellow": Yellow,
	"green":  Green,
	"blue":   Blue,
	"white":  White,
	"none":   Transparent,
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color(0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseHex parses "#RRGGBB" into an opaque color.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("invalid hex color %q: want #RRGGBB", s)
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return 0, fmt.Errorf("invalid hex color %q: bad digit %q", s, s[i])
		}
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// NamedColor maps a highlight name to a color. Matching ignores case;
// unknown names are Black and "none" is Transparent.
func NamedColor(name string) Color {
	if c, ok := namedColors[strings.ToLower(name)]; ok {
		return c
	}
	return Black
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Opaque reports whether the alpha channel is fully set.
func (c Color) Opaque() bool { return c.A() == 0xFF }

// Hex formats the color channels as "#RRGGBB", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

// RGBA implements image/color.Color with alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A())
	r = uint32(c.R()) * a / 0xFF
	g = uint32(c.G()) * a / 0xFF
	b = uint32(c.B()) * a / 0xFF
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// Colorful converts the color channels to a colorful.Color, ignoring alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

func (c Color) String() string {
	if c == Transparent {
		return "transparent"
	}
	return fmt.Sprintf("#%08X", uint32(c))
}
