package media

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/palettum/palettum"
	"github.com/palettum/palettum/internal/colormath"
)

// Kind names the media container a frame sequence came from. Only the
// pixel-grid contract is specified here, not the container codec -- see
// spec.md section 4.11 / SPEC_FULL.md section 4.11.
type Kind int

const (
	Image Kind = iota
	Gif
	Ico
)

// Media is a decoded sequence of one or more RGBA frames, already
// materialized from whatever container produced them.
type Media struct {
	Kind   Kind
	Frames []*image.NRGBA
}

// FromImage wraps a single decoded still image as a one-frame Media.
func FromImage(img image.Image) *Media {
	return &Media{Kind: Image, Frames: []*image.NRGBA{toNRGBA(img)}}
}

// FromFrames wraps an already-decoded multi-frame sequence (GIF
// animation or an ICO bundle's resolution variants).
func FromFrames(kind Kind, frames []image.Image) *Media {
	m := &Media{Kind: kind, Frames: make([]*image.NRGBA, len(frames))}
	for i, f := range frames {
		m.Frames[i] = toNRGBA(f)
	}
	return m
}

// toNRGBA converts an arbitrary image.Image to straight-alpha NRGBA.
// Non-NRGBA sources go through go-colorful's MakeColor, which
// un-premultiplies alpha before handing back sRGB -- the same correction
// Lab ingestion needs, so it is reused here instead of a second
// hand-rolled unpremultiply.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			orig := img.At(x, y)
			_, _, _, a32 := orig.RGBA()
			col, ok := colorful.MakeColor(orig)
			var r, g, bl uint8
			if ok {
				r, g, bl = col.RGB255()
			}
			dst.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: bl, A: uint8(a32 >> 8)})
		}
	}
	return dst
}

// Palettify resizes (if configured) and remaps every frame of m in place,
// dispatching each frame through palettum.Palettify.
func (m *Media) Palettify(cfg palettum.Config) error {
	for i, f := range m.Frames {
		f = Resize(f, cfg)
		m.Frames[i] = f
		b := f.Bounds()
		if err := palettum.Palettify(f.Pix, b.Dx(), b.Dy(), cfg); err != nil {
			return err
		}
	}
	return nil
}

// ExtractPalette flattens every frame's pixels into one Lab slice, skipping
// fully transparent (alpha 0) pixels, and runs the Wu quantizer over it --
// the common case for GIF/ICO palette
// extraction, supplemented from original_source's from_gif/from_ico/
// from_image (spec.md's distillation only named single-image extraction;
// see SPEC_FULL.md section 4.11).
func (m *Media) ExtractPalette(k int, source string) (palettum.Palette, error) {
	var labs []colormath.Lab
	for _, f := range m.Frames {
		pix := f.Pix
		for i := 0; i+3 < len(pix); i += 4 {
			if pix[i+3] == 0 {
				continue
			}
			labs = append(labs, colormath.SRGBToLab(pix[i], pix[i+1], pix[i+2]))
		}
	}
	return palettum.PaletteFromPixels(labs, k, source)
}
