package color

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color. The R, G, B channels are the source of truth;
// every display format is derived from them. Two colors are equal when
// their channels are equal.
type Color struct {
	R, G, B uint8
}

// Parse reads a color from text. Accepted forms: "#rgb", "#rrggbb" (the
// leading "#" is optional), a decimal "R,G,B" triple, or a CSS color name
// (case-insensitive).
func Parse(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Color{}, fmt.Errorf("invalid color %q: empty", s)
	}

	if strings.Contains(trimmed, ",") {
		return parseTriple(trimmed)
	}

	hex := strings.TrimPrefix(trimmed, "#")
	if isHex(hex) {
		return parseHex(trimmed, hex)
	}

	if c, ok := named[strings.ToLower(trimmed)]; ok {
		return c, nil
	}

	return Color{}, fmt.Errorf("invalid color %q: not a hex value, R,G,B triple or color name", s)
}

// Random draws a color with uniformly distributed channels.
func Random(rng *rand.Rand) Color {
	return Color{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}

// Contrast returns the WCAG contrast ratio between c and other. The result
// is symmetric and lies in [1, 21].
func (c Color) Contrast(other Color) float64 {
	l1, l2 := c.luminance(), other.luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Inverted returns the channel-wise inverse of c. It fails when the inverse
// does not reach minContrast against c, which happens for mid-range colors;
// callers that can vary the base are expected to retry with a new one.
func (c Color) Inverted(minContrast float64) (Color, error) {
	inv := Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	if ratio := c.Contrast(inv); ratio < minContrast {
		return Color{}, fmt.Errorf("inverse of %s has contrast %.3f, below %.3g", c, ratio, minContrast)
	}
	return inv, nil
}

// String renders c as a lowercase "#rrggbb" hex value.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) luminance() float64 {
	r := srgbToLinear(float64(c.R) / 255)
	g := srgbToLinear(float64(c.G) / 255)
	b := srgbToLinear(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func parseTriple(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid color %q: expected three comma-separated channels", s)
	}
	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: channel %q is not in 0..255", s, strings.TrimSpace(part))
		}
		channels[i] = uint8(v)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func parseHex(orig, hex string) (Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: hex value must have 3 or 6 digits", orig)
	}
	parsed, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", orig, err)
	}
	r, g, b := parsed.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

func isHex(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
