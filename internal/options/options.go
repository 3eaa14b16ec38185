package options

import (
	"strings"

	"wallgen/internal/color"
)

// SpecKind tags a ColorSpec. The sentinel spellings "random" and "inverted"
// are recognized once, at parse time; downstream code switches on the tag and
// never compares strings.
type SpecKind int

const (
	// SpecExplicit pins a concrete color.
	SpecExplicit SpecKind = iota
	// SpecRandom asks the resolver for a uniformly random color.
	SpecRandom
	// SpecInverted derives the color from the resolved background.
	SpecInverted
)

// ColorSpec is a background or highlight color request. Color is only
// meaningful when Kind is SpecExplicit.
type ColorSpec struct {
	Kind  SpecKind
	Color color.Color
}

// ParseBackgroundSpec reads a --color argument: the sentinel "random" or a
// concrete color.
func ParseBackgroundSpec(arg string) (ColorSpec, error) {
	if strings.EqualFold(strings.TrimSpace(arg), "random") {
		return ColorSpec{Kind: SpecRandom}, nil
	}
	c, err := color.Parse(arg)
	if err != nil {
		return ColorSpec{}, err
	}
	return ColorSpec{Kind: SpecExplicit, Color: c}, nil
}

// ParseHighlightSpec reads a --color2 argument: the sentinel "inverted" or a
// concrete color.
func ParseHighlightSpec(arg string) (ColorSpec, error) {
	if strings.EqualFold(strings.TrimSpace(arg), "inverted") {
		return ColorSpec{Kind: SpecInverted}, nil
	}
	c, err := color.Parse(arg)
	if err != nil {
		return ColorSpec{}, err
	}
	return ColorSpec{Kind: SpecExplicit, Color: c}, nil
}

// DefaultMaxAttempts bounds the resolver's random draws when the flag is
// left at its default.
const DefaultMaxAttempts = 10000

// ParsedOptions is the raw result of flag parsing: every field validated in
// isolation, color constraints not yet resolved.
type ParsedOptions struct {
	Output    string
	Overwrite bool

	Background ColorSpec
	Highlight  ColorSpec

	// Display overrides the name row. nil keeps the default (the resolved
	// background's color name); a pointer to "" disables the row.
	Display *string

	Overlay         *color.Color
	OverlayContrast float64
	MinContrast     float64

	Resolution Resolution
	Scale      int
	Formats    []color.Format

	MaxAttempts int
}

// Defaults returns the options produced by an empty command line.
func Defaults() ParsedOptions {
	return ParsedOptions{
		Output:          "out.png",
		Background:      ColorSpec{Kind: SpecRandom},
		Highlight:       ColorSpec{Kind: SpecInverted},
		OverlayContrast: 1,
		MinContrast:     1,
		Resolution:      Resolution{Width: 1920, Height: 1080},
		Scale:           3,
		Formats:         DefaultFormats(),
		MaxAttempts:     DefaultMaxAttempts,
	}
}

// DefaultFormats returns the default display row ordering. A fresh slice is
// allocated per call so no two invocations share backing storage.
func DefaultFormats() []color.Format {
	return []color.Format{color.FormatEmpty, color.FormatHexUp, color.FormatRGB}
}
