package options

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"wallgen/internal/color"
)

// ErrUnsatisfiable is wrapped by resolution errors reported when the random
// search exhausts its attempt budget without satisfying every contrast
// constraint.
var ErrUnsatisfiable = errors.New("contrast constraints unsatisfiable")

// ResolvedOptions is ParsedOptions with the color specs replaced by concrete
// colors satisfying every active contrast constraint. It is the terminal
// artifact handed to the renderer.
type ResolvedOptions struct {
	Output    string
	Overwrite bool

	Background color.Color
	Highlight  color.Color
	Overlay    *color.Color

	Display    *string
	Resolution Resolution
	Scale      int
	Formats    []color.Format
}

// Resolver turns parsed color specs and contrast thresholds into a mutually
// consistent assignment by rejection sampling.
type Resolver struct {
	// Rand is the random source for background draws. A nil Rand is
	// replaced by a time-seeded one on first use.
	Rand *rand.Rand
	// Logger receives per-draw diagnostics at debug level. nil uses the
	// default logger.
	Logger *slog.Logger
}

// Resolve picks a background and highlight color satisfying the overlay and
// min-contrast thresholds in opts.
//
// The background comes first: an explicit spec is taken as-is, a random spec
// is drawn. If an overlay color is present, an explicit background below the
// overlay threshold is a fatal configuration error; a drawn background is
// re-drawn until it clears the threshold. The highlight is then either
// parsed as-is or derived as the contrast-satisfying inverse of the
// background; when inversion fails for the current background, a new one is
// drawn and the overlay check runs again before the next inversion attempt.
//
// Every draw counts against opts.MaxAttempts; exhausting the budget returns
// an error wrapping ErrUnsatisfiable.
func (r *Resolver) Resolve(opts ParsedOptions) (*ResolvedOptions, error) {
	rng := r.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}

	attempts := 0
	draw := func() (color.Color, error) {
		if attempts >= maxAttempts {
			return color.Color{}, fmt.Errorf("%w: gave up after %d random draws", ErrUnsatisfiable, attempts)
		}
		attempts++
		c := color.Random(rng)
		logger.Debug("drew candidate background", "color", c.String(), "attempt", attempts)
		return c, nil
	}

	// Whether the background is free to vary is decided once, from the
	// spec. A background replaced later because inversion failed does not
	// become "random" for the overlay check.
	randomBackground := opts.Background.Kind == SpecRandom

	var background color.Color
	if randomBackground {
		var err error
		if background, err = draw(); err != nil {
			return nil, err
		}
	} else {
		background = opts.Background.Color
	}

	var highlight color.Color
	for {
		if opts.Overlay != nil {
			if !randomBackground {
				if ratio := background.Contrast(*opts.Overlay); ratio < opts.OverlayContrast {
					return nil, fmt.Errorf("contrast of %s and %s is lower than %v (%.3f)",
						background, *opts.Overlay, opts.OverlayContrast, ratio)
				}
			}
			for background.Contrast(*opts.Overlay) < opts.OverlayContrast {
				var err error
				if background, err = draw(); err != nil {
					return nil, err
				}
			}
		}

		if opts.Highlight.Kind != SpecInverted {
			highlight = opts.Highlight.Color
			break
		}

		inverted, err := background.Inverted(opts.MinContrast)
		if err == nil {
			highlight = inverted
			break
		}
		logger.Debug("inversion failed, replacing background", "background", background.String(), "reason", err)
		if background, err = draw(); err != nil {
			return nil, err
		}
	}

	return &ResolvedOptions{
		Output:     opts.Output,
		Overwrite:  opts.Overwrite,
		Background: background,
		Highlight:  highlight,
		Overlay:    opts.Overlay,
		Display:    opts.Display,
		Resolution: opts.Resolution,
		Scale:      opts.Scale,
		Formats:    opts.Formats,
	}, nil
}
