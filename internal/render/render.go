// Package render draws the wallpaper: a solid background with a centered
// block of text rows in the highlight color, one row per requested display
// format.
package render

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"wallgen/internal/color"
	"wallgen/internal/options"
)

// lineHeight is the row advance for basicfont.Face7x13 plus leading.
const lineHeight = 16

// Rows builds the text rows for the image: the display-name row followed by
// one row per format token. A nil display override uses the background's
// color name; an empty override drops the name row. Empty format rows are
// kept as spacers.
func Rows(opts *options.ResolvedOptions) []string {
	var rows []string
	name := opts.Background.Name()
	if opts.Display != nil {
		name = *opts.Display
	}
	if name != "" {
		rows = append(rows, name)
	}
	for _, f := range opts.Formats {
		rows = append(rows, opts.Background.Render(f))
	}
	return rows
}

// Compose renders the wallpaper image in memory.
func Compose(opts *options.ResolvedOptions) *image.RGBA {
	bounds := image.Rect(0, 0, opts.Resolution.Width, opts.Resolution.Height)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(rgba(opts.Background)), image.Point{}, draw.Src)

	rows := Rows(opts)
	if len(rows) == 0 {
		return img
	}

	textW := 0
	for _, row := range rows {
		if w := 7 * len(row); w > textW {
			textW = w
		}
	}
	if textW == 0 {
		return img
	}
	textH := lineHeight * len(rows)

	canvas := image.NewRGBA(image.Rect(0, 0, textW, textH))
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(rgba(opts.Highlight)),
		Face: basicfont.Face7x13,
	}
	for i, row := range rows {
		w := drawer.MeasureString(row).Ceil()
		drawer.Dot = fixed.P((textW-w)/2, i*lineHeight+basicfont.Face7x13.Ascent)
		drawer.DrawString(row)
	}

	// The text block occupies 1/scale of the image height, upscaled by
	// whole pixels so the bitmap glyphs stay crisp.
	div := opts.Scale
	if div < 1 {
		div = 1
	}
	scale := (opts.Resolution.Height / div) / textH
	if byWidth := opts.Resolution.Width / textW; byWidth < scale {
		scale = byWidth
	}
	if scale < 1 {
		scale = 1
	}

	offsetX := (opts.Resolution.Width - textW*scale) / 2
	offsetY := (opts.Resolution.Height - textH*scale) / 2
	for y := 0; y < textH; y++ {
		for x := 0; x < textW; x++ {
			px := canvas.RGBAAt(x, y)
			if px.A < 128 {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(offsetX+x*scale+dx, offsetY+y*scale+dy, px)
				}
			}
		}
	}
	return img
}

// WriteFile encodes img as PNG at path. An existing file is only replaced
// when overwrite is set. The image is written to a uniquely named temp file
// in the target directory and renamed into place, so a crash never leaves a
// truncated output.
func WriteFile(path string, img image.Image, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, pass --yes to overwrite", path)
		}
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finish writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

func rgba(c color.Color) imgcolor.RGBA {
	return imgcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
