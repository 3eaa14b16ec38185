package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"wallgen/internal/preset"
)

// applyPreset feeds preset values through the regular flag machinery so they
// pass the same parsers, but only for flags the user did not set explicitly.
func applyPreset(flags *pflag.FlagSet, name, path string) error {
	p, err := preset.Lookup(path, name)
	if err != nil {
		return err
	}

	set := func(flagName, value string) error {
		if flags.Changed(flagName) {
			return nil
		}
		if err := flags.Set(flagName, value); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		return nil
	}

	if p.Color != nil {
		if err := set("color", *p.Color); err != nil {
			return err
		}
	}
	if p.Color2 != nil {
		if err := set("color2", *p.Color2); err != nil {
			return err
		}
	}
	if p.Display != nil {
		if err := set("display", *p.Display); err != nil {
			return err
		}
	}
	if p.MinContrast != nil {
		if err := set("min-contrast", strconv.FormatFloat(*p.MinContrast, 'f', -1, 64)); err != nil {
			return err
		}
	}
	if p.OverlayColor != nil {
		if err := set("overlay-color", *p.OverlayColor); err != nil {
			return err
		}
	}
	if p.OverlayContrast != nil {
		if err := set("overlay-contrast", strconv.FormatFloat(*p.OverlayContrast, 'f', -1, 64)); err != nil {
			return err
		}
	}
	if p.Resolution != nil {
		if err := set("resolution", *p.Resolution); err != nil {
			return err
		}
	}
	if p.Scale != nil {
		if err := set("scale", strconv.Itoa(*p.Scale)); err != nil {
			return err
		}
	}
	if len(p.Formats) > 0 && !flags.Changed("formats") {
		for _, f := range p.Formats {
			if err := flags.Set("formats", f); err != nil {
				return fmt.Errorf("preset %q: %w", name, err)
			}
		}
	}
	return nil
}
