package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"wallgen/internal/options"
	"wallgen/internal/preset"
	"wallgen/internal/render"
)

// Flags
var (
	opts        = options.Defaults()
	presetName  string
	presetsFile string
	verbose     bool
)

func init() {
	bindOptionFlags(rootCmd.Flags(), &opts)

	rootCmd.Flags().StringVar(&presetName, "preset", "", "Apply a named preset from the presets file")
	rootCmd.Flags().StringVar(&presetsFile, "presets-file", preset.DefaultPath(), "Path of the presets file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// bindOptionFlags registers the option flags on f, bound to o through the
// typed parsers. Split out of init so tests can parse into a fresh
// ParsedOptions.
func bindOptionFlags(f *pflag.FlagSet, o *options.ParsedOptions) {
	f.SortFlags = false

	f.StringVarP(&o.Output, "output", "o", o.Output, "Image output path")
	f.BoolVarP(&o.Overwrite, "yes", "y", false, "Force overwrite of --output")
	f.VarP(newSpecValue(&o.Background, options.ParseBackgroundSpec, "random"), "color", "c", "Background color: #hex / R,G,B / name / random")
	f.Var(newSpecValue(&o.Highlight, options.ParseHighlightSpec, "inverted"), "color2", "Highlight color: #hex / R,G,B / name / inverted (also -c2)")
	f.VarP(newOptionalStringValue(&o.Display), "display", "d", "Override the display name of --color; an empty string disables the name row")
	f.Var(newRangeValue(&o.MinContrast, 1, 21), "min-contrast", "Min contrast of --color and --color2 when --color2 is inverted, in range (1, 21)")
	f.Var(newColorValue(&o.Overlay), "overlay-color", "Color of a potential overlay, like icons or text")
	f.Var(newRangeValue(&o.OverlayContrast, 1, 21), "overlay-contrast", "Min contrast of --color and --overlay-color, in range (1, 21)")
	f.VarP(newResolutionValue(&o.Resolution), "resolution", "r", "Dimensions of the result image, WIDTHxHEIGHT")
	f.VarP(newPositiveValue(&o.Scale), "scale", "s", "The size of the highlight will be divided by this")
	f.VarP(newFormatsValue(&o.Formats), "formats", "f", "Order and formats to display: empty, hex, #hex, HEX, #HEX, rgb, hsv, hsl, cmyk")
	f.Var(newPositiveValue(&o.MaxAttempts), "max-attempts", "Random draws to try before declaring the contrast constraints unsatisfiable")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	setupLogging(verbose)

	if presetName != "" {
		if err := applyPreset(cmd.Flags(), presetName, presetsFile); err != nil {
			return err
		}
	}

	resolver := &options.Resolver{}
	resolved, err := resolver.Resolve(opts)
	if err != nil {
		return err
	}
	slog.Debug("resolved colors",
		"background", resolved.Background.String(),
		"highlight", resolved.Highlight.String())

	img := render.Compose(resolved)
	if err := render.WriteFile(resolved.Output, img, resolved.Overwrite); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%s, background %s, highlight %s)\n",
		resolved.Output, resolved.Resolution, resolved.Background, resolved.Highlight)
	return nil
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
