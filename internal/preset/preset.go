// Package preset loads named flag-default bundles from an HCL file so that
// recurring wallpaper setups don't have to be retyped. Values from a preset
// seed the defaults; flags given explicitly on the command line always win.
package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Preset is one named bundle of option values. All attributes are optional;
// a nil field leaves the corresponding flag at its built-in default. String
// fields hold the same spellings the flags accept and run through the same
// parsers.
type Preset struct {
	Name            string   `hcl:"name,label"`
	Color           *string  `hcl:"color,optional"`
	Color2          *string  `hcl:"color2,optional"`
	Display         *string  `hcl:"display,optional"`
	MinContrast     *float64 `hcl:"min_contrast,optional"`
	OverlayColor    *string  `hcl:"overlay_color,optional"`
	OverlayContrast *float64 `hcl:"overlay_contrast,optional"`
	Resolution      *string  `hcl:"resolution,optional"`
	Scale           *int     `hcl:"scale,optional"`
	Formats         []string `hcl:"formats,optional"`
}

type presetFile struct {
	Presets []*Preset `hcl:"preset,block"`
}

// DefaultPath returns the conventional presets location. It respects
// XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/wallgen.
func DefaultPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "wallgen", "presets.hcl")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wallgen", "presets.hcl")
}

// Load parses every preset block in the file at path.
func Load(path string) (map[string]*Preset, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse presets file %s: %w", path, diags)
	}

	var parsed presetFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode presets file %s: %w", path, diags)
	}

	presets := make(map[string]*Preset, len(parsed.Presets))
	for _, p := range parsed.Presets {
		if _, ok := presets[p.Name]; ok {
			return nil, fmt.Errorf("presets file %s defines %q twice", path, p.Name)
		}
		presets[p.Name] = p
	}
	return presets, nil
}

// Lookup loads the presets file and returns the named preset, or an error
// listing what is available.
func Lookup(path, name string) (*Preset, error) {
	presets, err := Load(path)
	if err != nil {
		return nil, err
	}
	p, ok := presets[name]
	if !ok {
		available := make([]string, 0, len(presets))
		for n := range presets {
			available = append(available, n)
		}
		sort.Strings(available)
		return nil, fmt.Errorf("no preset named %q in %s, available: %v", name, path, available)
	}
	return p, nil
}
