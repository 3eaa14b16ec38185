package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"wallgen/internal/color"
	"wallgen/internal/options"
)

// parseArgs runs the full flag pipeline (alias rewriting, typed parsers,
// default substitution) into a fresh ParsedOptions.
func parseArgs(t *testing.T, args ...string) (options.ParsedOptions, error) {
	t.Helper()
	o := options.Defaults()
	f := pflag.NewFlagSet("wallgen", pflag.ContinueOnError)
	bindOptionFlags(f, &o)
	err := f.Parse(normalizeArgs(args))
	return o, err
}

func TestParse_Defaults(t *testing.T) {
	o, err := parseArgs(t)
	if err != nil {
		t.Fatalf("parsing no args failed: %v", err)
	}
	if o.Output != "out.png" || o.Overwrite {
		t.Errorf("output defaults wrong: %q %v", o.Output, o.Overwrite)
	}
	if o.Background.Kind != options.SpecRandom || o.Highlight.Kind != options.SpecInverted {
		t.Error("color spec defaults wrong")
	}
	if o.Resolution != (options.Resolution{Width: 1920, Height: 1080}) || o.Scale != 3 {
		t.Errorf("display defaults wrong: %v scale=%d", o.Resolution, o.Scale)
	}
	want := []color.Format{color.FormatEmpty, color.FormatHexUp, color.FormatRGB}
	if len(o.Formats) != 3 || o.Formats[0] != want[0] || o.Formats[1] != want[1] || o.Formats[2] != want[2] {
		t.Errorf("format defaults wrong: %v", o.Formats)
	}
}

func TestParse_EndToEnd(t *testing.T) {
	o, err := parseArgs(t, "-r", "800x600", "-s", "1", "-f", "hex", "rgb")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if o.Resolution != (options.Resolution{Width: 800, Height: 600}) {
		t.Errorf("Resolution = %v, want 800x600", o.Resolution)
	}
	if o.Scale != 1 {
		t.Errorf("Scale = %d, want 1", o.Scale)
	}
	if len(o.Formats) != 2 || o.Formats[0] != color.FormatHex || o.Formats[1] != color.FormatRGB {
		t.Errorf("Formats = %v, want [hex rgb]", o.Formats)
	}
}

func TestParse_RejectsSmallResolution(t *testing.T) {
	_, err := parseArgs(t, "-r", "100x200")
	if err == nil {
		t.Fatal("100x200 should be rejected")
	}
	if !strings.Contains(err.Error(), "resolution") {
		t.Errorf("error %q should name the resolution flag", err)
	}
}

func TestParse_Colors(t *testing.T) {
	o, err := parseArgs(t, "-c", "#102030", "-c2", "white", "--overlay-color", "0,0,0", "--overlay-contrast", "4.5")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if o.Background.Kind != options.SpecExplicit || o.Background.Color != (color.Color{R: 16, G: 32, B: 48}) {
		t.Errorf("Background = %+v", o.Background)
	}
	if o.Highlight.Kind != options.SpecExplicit || o.Highlight.Color != (color.Color{R: 255, G: 255, B: 255}) {
		t.Errorf("Highlight = %+v", o.Highlight)
	}
	if o.Overlay == nil || *o.Overlay != (color.Color{R: 0, G: 0, B: 0}) {
		t.Errorf("Overlay = %v", o.Overlay)
	}
	if o.OverlayContrast != 4.5 {
		t.Errorf("OverlayContrast = %v", o.OverlayContrast)
	}
}

func TestParse_DisplayUnsetVersusEmpty(t *testing.T) {
	o, err := parseArgs(t)
	if err != nil {
		t.Fatal(err)
	}
	if o.Display != nil {
		t.Error("Display should default to unset")
	}

	o, err = parseArgs(t, "-d", "")
	if err != nil {
		t.Fatal(err)
	}
	if o.Display == nil || *o.Display != "" {
		t.Error("explicit empty display should be recorded")
	}
}

func TestParse_InvalidInputsNameTheFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
	}{
		{"bad contrast", []string{"--min-contrast", "30"}, "min-contrast"},
		{"bad format", []string{"-f", "Hex"}, "formats"},
		{"unknown format", []string{"-f", "yuv"}, "formats"},
		{"bad overlay", []string{"--overlay-color", "nope"}, "overlay-color"},
		{"bad scale", []string{"-s", "wide"}, "scale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			if err == nil {
				t.Fatalf("args %v should fail", tt.args)
			}
			if !strings.Contains(err.Error(), tt.flag) {
				t.Errorf("error %q should name flag %q", err, tt.flag)
			}
		})
	}
}

func TestParse_ScaleFloorsAtOne(t *testing.T) {
	o, err := parseArgs(t, "-s", "0.4")
	if err != nil {
		t.Fatal(err)
	}
	if o.Scale != 1 {
		t.Errorf("Scale = %d, want 1", o.Scale)
	}
}

func TestApplyPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.hcl")
	content := `
preset "desk" {
  color        = "#202030"
  resolution   = "2560x1440"
  scale        = 2
  min_contrast = 4.5
  formats      = ["#HEX", "rgb"]
}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	o := options.Defaults()
	f := pflag.NewFlagSet("wallgen", pflag.ContinueOnError)
	bindOptionFlags(f, &o)
	// --scale on the command line beats the preset.
	if err := f.Parse([]string{"-s", "5"}); err != nil {
		t.Fatal(err)
	}
	if err := applyPreset(f, "desk", path); err != nil {
		t.Fatalf("applyPreset returned error: %v", err)
	}

	if o.Background.Kind != options.SpecExplicit || o.Background.Color != (color.Color{R: 32, G: 32, B: 48}) {
		t.Errorf("Background = %+v, want the preset color", o.Background)
	}
	if o.Resolution != (options.Resolution{Width: 2560, Height: 1440}) {
		t.Errorf("Resolution = %v", o.Resolution)
	}
	if o.Scale != 5 {
		t.Errorf("Scale = %d, explicit flag should win over the preset", o.Scale)
	}
	if o.MinContrast != 4.5 {
		t.Errorf("MinContrast = %v", o.MinContrast)
	}
	if len(o.Formats) != 2 || o.Formats[0] != color.FormatHashUp || o.Formats[1] != color.FormatRGB {
		t.Errorf("Formats = %v", o.Formats)
	}
}

func TestApplyPreset_UnknownName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.hcl")
	if err := os.WriteFile(path, []byte(`preset "desk" {}`), 0o644); err != nil {
		t.Fatal(err)
	}

	o := options.Defaults()
	f := pflag.NewFlagSet("wallgen", pflag.ContinueOnError)
	bindOptionFlags(f, &o)
	if err := applyPreset(f, "tv", path); err == nil {
		t.Fatal("unknown preset should fail")
	}
}

func TestApplyPreset_InvalidValueIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.hcl")
	if err := os.WriteFile(path, []byte(`preset "bad" { resolution = "10x10" }`), 0o644); err != nil {
		t.Fatal(err)
	}

	o := options.Defaults()
	f := pflag.NewFlagSet("wallgen", pflag.ContinueOnError)
	bindOptionFlags(f, &o)
	err := applyPreset(f, "bad", path)
	if err == nil {
		t.Fatal("preset values must pass the same parsers as flags")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error %q should name the preset", err)
	}
}
