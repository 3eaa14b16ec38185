package color

import (
	"fmt"
	imgcolor "image/color"
	"math"
)

// Format selects one display representation of a color. The canonical
// spellings are case-sensitive: "hex" and "HEX" are distinct formats.
type Format string

const (
	FormatEmpty   Format = "empty"
	FormatHex     Format = "hex"
	FormatHashHex Format = "#hex"
	FormatHexUp   Format = "HEX"
	FormatHashUp  Format = "#HEX"
	FormatRGB     Format = "rgb"
	FormatHSV     Format = "hsv"
	FormatHSL     Format = "hsl"
	FormatCMYK    Format = "cmyk"
)

// FormatNames returns the canonical format spellings in declaration order.
// The slice is freshly allocated on every call.
func FormatNames() []string {
	return []string{"empty", "hex", "#hex", "HEX", "#HEX", "rgb", "hsv", "hsl", "cmyk"}
}

// Render produces the display row for c in the given format. FormatEmpty
// renders an empty row. Unknown formats render empty as well; the CLI layer
// rejects them before they get here.
func (c Color) Render(f Format) string {
	switch f {
	case FormatHex:
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	case FormatHashHex:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	case FormatHexUp:
		return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
	case FormatHashUp:
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case FormatHSV:
		h, s, v := c.colorful().Hsv()
		return fmt.Sprintf("hsv(%d, %d%%, %d%%)", int(math.Round(h)), pct(s), pct(v))
	case FormatHSL:
		h, s, l := c.colorful().Hsl()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(math.Round(h)), pct(s), pct(l))
	case FormatCMYK:
		cy, m, y, k := imgcolor.RGBToCMYK(c.R, c.G, c.B)
		return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", pct255(cy), pct255(m), pct255(y), pct255(k))
	}
	return ""
}

func pct(v float64) int {
	return int(math.Round(v * 100))
}

func pct255(v uint8) int {
	return int(math.Round(float64(v) / 255 * 100))
}
