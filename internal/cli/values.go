package cli

import (
	"strconv"
	"strings"

	"wallgen/internal/color"
	"wallgen/internal/options"
)

// pflag.Value adapters binding each flag to its typed parser. The flag layer
// only dispatches and substitutes defaults; all validation lives in the
// parsers.

type specValue struct {
	dst   *options.ColorSpec
	parse func(string) (options.ColorSpec, error)
	text  string
}

func newSpecValue(dst *options.ColorSpec, parse func(string) (options.ColorSpec, error), def string) *specValue {
	return &specValue{dst: dst, parse: parse, text: def}
}

func (v *specValue) Set(s string) error {
	spec, err := v.parse(s)
	if err != nil {
		return err
	}
	*v.dst = spec
	v.text = s
	return nil
}

func (v *specValue) String() string { return v.text }
func (v *specValue) Type() string   { return "color" }

type colorValue struct {
	dst  **color.Color
	text string
}

func newColorValue(dst **color.Color) *colorValue {
	return &colorValue{dst: dst}
}

func (v *colorValue) Set(s string) error {
	c, err := color.Parse(s)
	if err != nil {
		return err
	}
	*v.dst = &c
	v.text = s
	return nil
}

func (v *colorValue) String() string { return v.text }
func (v *colorValue) Type() string   { return "color" }

// optionalStringValue distinguishes an unset flag from an explicitly empty
// one; --display "" carries meaning (it disables the name row).
type optionalStringValue struct {
	dst **string
}

func newOptionalStringValue(dst **string) *optionalStringValue {
	return &optionalStringValue{dst: dst}
}

func (v *optionalStringValue) Set(s string) error {
	value := s
	*v.dst = &value
	return nil
}

func (v *optionalStringValue) String() string {
	if *v.dst == nil {
		return ""
	}
	return **v.dst
}

func (v *optionalStringValue) Type() string { return "string" }

type rangeValue struct {
	dst   *float64
	parse func(string) (float64, error)
}

func newRangeValue(dst *float64, low, high float64) *rangeValue {
	return &rangeValue{dst: dst, parse: options.InRange[float64](low, high)}
}

func (v *rangeValue) Set(s string) error {
	f, err := v.parse(s)
	if err != nil {
		return err
	}
	*v.dst = f
	return nil
}

func (v *rangeValue) String() string { return strconv.FormatFloat(*v.dst, 'f', -1, 64) }
func (v *rangeValue) Type() string   { return "number" }

type positiveValue struct {
	dst *int
}

func newPositiveValue(dst *int) *positiveValue {
	return &positiveValue{dst: dst}
}

func (v *positiveValue) Set(s string) error {
	n, err := options.Positive[int](s)
	if err != nil {
		return err
	}
	*v.dst = n
	return nil
}

func (v *positiveValue) String() string { return strconv.Itoa(*v.dst) }
func (v *positiveValue) Type() string   { return "number" }

type resolutionValue struct {
	dst *options.Resolution
}

func newResolutionValue(dst *options.Resolution) *resolutionValue {
	return &resolutionValue{dst: dst}
}

func (v *resolutionValue) Set(s string) error {
	r, err := options.ParseResolution(s)
	if err != nil {
		return err
	}
	*v.dst = r
	return nil
}

func (v *resolutionValue) String() string { return v.dst.String() }
func (v *resolutionValue) Type() string   { return "WxH" }

// formatsValue collects one or more format tokens in order, duplicates
// allowed. The first explicit token replaces the built-in default list.
type formatsValue struct {
	dst     *[]color.Format
	fix     func(string) (string, error)
	changed bool
}

func newFormatsValue(dst *[]color.Format) *formatsValue {
	return &formatsValue{dst: dst, fix: options.FixCasing(color.FormatNames())}
}

func (v *formatsValue) Set(s string) error {
	fixed, err := v.fix(s)
	if err != nil {
		return err
	}
	if !v.changed {
		*v.dst = nil
		v.changed = true
	}
	*v.dst = append(*v.dst, color.Format(fixed))
	return nil
}

func (v *formatsValue) String() string {
	parts := make([]string, len(*v.dst))
	for i, f := range *v.dst {
		parts[i] = string(f)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (v *formatsValue) Type() string { return "format" }
