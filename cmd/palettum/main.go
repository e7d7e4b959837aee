// Command palettum remaps a PNG or GIF's pixels onto a named palette.
//
// Usage:
//
//	palettum [options] <input> <output>
//
// This is a thin demonstration wrapper; CLI ergonomics (flags beyond the
// core knobs, TUI, batch processing) are out of scope -- see spec.md's
// Non-goals.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/palettum/palettum"
	"github.com/palettum/palettum/internal/media"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "palettum: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("palettum", flag.ExitOnError)
	paletteID := fs.String("palette", "", "palette id to remap onto (required)")
	mapping := fs.String("mapping", "smoothed", "palettized|smoothed")
	formula := fs.String("formula", "ciede2000", "cie76|cie94|ciede2000")
	strength := fs.Float64("strength", 0.5, "smoothing strength [0,1]")
	customDir := fs.String("custom-dir", "", "custom palette directory (default: XDG data dir)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: palettum [options] <input> <output>")
		fs.PrintDefaults()
		os.Exit(2)
	}
	if *paletteID == "" {
		return fmt.Errorf("-palette is required")
	}

	st, err := palettum.NewStore(*customDir)
	if err != nil {
		return err
	}
	pal, ok, err := st.FindPalette(*paletteID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no such palette %q", *paletteID)
	}

	cfg := palettum.DefaultConfig()
	cfg.Palette = pal
	cfg.SmoothingStrength = float32(*strength)
	if *mapping == "palettized" {
		cfg.Mapping = palettum.Palettized
	}
	switch *formula {
	case "cie76":
		cfg.PalettizedFormula = palettum.CIE76
	case "cie94":
		cfg.PalettizedFormula = palettum.CIE94
	default:
		cfg.PalettizedFormula = palettum.CIEDE2000
	}

	in, out := fs.Arg(0), fs.Arg(1)
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(in), ".gif") {
		g, err := gif.DecodeAll(f)
		if err != nil {
			return err
		}
		frames := make([]image.Image, len(g.Image))
		for i, p := range g.Image {
			frames[i] = p
		}
		m := media.FromFrames(media.Gif, frames)
		if err := m.Palettify(cfg); err != nil {
			return err
		}
		pal := make(color.Palette, len(cfg.Palette.Colors))
		for i, c := range cfg.Palette.Colors {
			pal[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
		}
		for i, frm := range m.Frames {
			g.Image[i] = nrgbaToPaletted(frm, pal)
		}
		of, err := os.Create(out)
		if err != nil {
			return err
		}
		defer of.Close()
		return gif.EncodeAll(of, g)
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}
	m := media.FromImage(img)
	if err := m.Palettify(cfg); err != nil {
		return err
	}
	of, err := os.Create(out)
	if err != nil {
		return err
	}
	defer of.Close()
	return png.Encode(of, m.Frames[0])
}

// nrgbaToPaletted re-indexes a remapped NRGBA frame against pal for GIF
// re-encoding. Under -mapping=palettized every opaque pixel is already a
// palette entry, so this is an exact lookup; under the default smoothed
// mapping, and for fully transparent pixels, image.Paletted.Set picks the
// nearest entry of pal instead.
func nrgbaToPaletted(img *image.NRGBA, pal color.Palette) *image.Paletted {
	b := img.Bounds()
	out := image.NewPaletted(b, pal)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}
