package options

import (
	"testing"

	"wallgen/internal/color"
)

func TestParseBackgroundSpec(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ColorSpec
	}{
		{"sentinel", "random", ColorSpec{Kind: SpecRandom}},
		{"sentinel upper", "RANDOM", ColorSpec{Kind: SpecRandom}},
		{"sentinel padded", "  random ", ColorSpec{Kind: SpecRandom}},
		{"hex", "#102030", ColorSpec{Kind: SpecExplicit, Color: color.Color{R: 16, G: 32, B: 48}}},
		{"name", "teal", ColorSpec{Kind: SpecExplicit, Color: color.Color{R: 0, G: 128, B: 128}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBackgroundSpec(tt.in)
			if err != nil {
				t.Fatalf("ParseBackgroundSpec(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseBackgroundSpec(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseBackgroundSpec("inverted"); err == nil {
		t.Error("\"inverted\" is not a valid background spec")
	}
}

func TestParseHighlightSpec(t *testing.T) {
	got, err := ParseHighlightSpec("Inverted")
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != SpecInverted {
		t.Errorf("got kind %v, want SpecInverted", got.Kind)
	}

	if _, err := ParseHighlightSpec("random"); err == nil {
		t.Error("\"random\" is not a valid highlight spec")
	}
}

func TestDefaultFormatsIsFreshPerCall(t *testing.T) {
	a := DefaultFormats()
	b := DefaultFormats()
	a[0] = color.FormatCMYK
	if b[0] != color.FormatEmpty {
		t.Error("DefaultFormats calls share backing storage")
	}

	want := []color.Format{color.FormatEmpty, color.FormatHexUp, color.FormatRGB}
	for i, f := range b {
		if f != want[i] {
			t.Errorf("DefaultFormats()[%d] = %q, want %q", i, f, want[i])
		}
	}
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.Output != "out.png" {
		t.Errorf("Output = %q", d.Output)
	}
	if d.Background.Kind != SpecRandom || d.Highlight.Kind != SpecInverted {
		t.Error("default color specs should be the sentinels")
	}
	if d.Resolution != (Resolution{1920, 1080}) {
		t.Errorf("Resolution = %v", d.Resolution)
	}
	if d.Scale != 3 || d.MinContrast != 1 || d.OverlayContrast != 1 {
		t.Error("scale/contrast defaults are off")
	}
	if d.Display != nil || d.Overlay != nil {
		t.Error("display and overlay default to unset")
	}
}
