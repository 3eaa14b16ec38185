package options

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Number constrains the numeric kinds the scalar parsers can produce.
type Number interface {
	~int | ~float64
}

// Positive parses a number and floors it at 1. Inputs below 1, including
// negatives and fractions, become 1 rather than failing: parameters like
// --scale must never be zero, and user intent for "very small" is "smallest
// usable". Conversion to an integer kind truncates first, so "0.4" yields 1.
func Positive[T Number](arg string) (T, error) {
	var zero T
	f, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil || math.IsNaN(f) {
		return zero, fmt.Errorf("%q is not a number", arg)
	}
	v := T(f)
	if v < 1 {
		v = 1
	}
	return v, nil
}

// InRange returns a parser accepting exactly the closed interval
// [low, high]. Bound order does not matter; they are swapped if needed.
// The value is converted to T before the bounds check, matching the
// truncation behavior of Positive.
func InRange[T Number](low, high float64) func(string) (T, error) {
	if high < low {
		low, high = high, low
	}
	return func(arg string) (T, error) {
		var zero T
		f, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil || math.IsNaN(f) {
			return zero, fmt.Errorf("%q is not a number", arg)
		}
		v := T(f)
		// Stated positively so a NaN that slips through a conversion can
		// never pass the bounds check.
		if !(float64(v) >= low && float64(v) <= high) {
			return zero, fmt.Errorf("%v must be in range (%v, %v)", v, low, high)
		}
		return v, nil
	}
}

// Resolution is the output image size in pixels.
type Resolution struct {
	Width, Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// MinDimension is the smallest accepted width or height.
const MinDimension = 150

var resolutionRe = regexp.MustCompile(`^\s*(\d+)\s*[x:]\s*(\d+)\s*$`)

// ParseResolution reads "<width>x<height>" or "<width>:<height>", tolerating
// whitespace around the separator. Both dimensions must be at least
// MinDimension.
func ParseResolution(arg string) (Resolution, error) {
	m := resolutionRe.FindStringSubmatch(arg)
	if m == nil {
		return Resolution{}, fmt.Errorf("unable to parse the resolution %q", arg)
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return Resolution{}, fmt.Errorf("unable to parse the resolution %q", arg)
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return Resolution{}, fmt.Errorf("unable to parse the resolution %q", arg)
	}
	if w < MinDimension || h < MinDimension {
		return Resolution{}, fmt.Errorf("minimal resolution is %dx%d", MinDimension, MinDimension)
	}
	return Resolution{Width: w, Height: h}, nil
}
