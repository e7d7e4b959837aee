package palettum

import (
	"github.com/palettum/palettum/internal/colormath"
	"github.com/palettum/palettum/internal/store"
)

// Color is an 8-bit sRGB triple with no alpha; palette entries carry no
// transparency information.
type Color struct {
	R, G, B uint8
}

// PaletteKind distinguishes where a palette came from.
type PaletteKind int

const (
	PaletteDefault PaletteKind = iota
	PaletteCustom
	PaletteUnset
)

// Palette is an ordered sequence of up to 256 unique sRGB entries.
// ID matches [a-z0-9][a-z0-9-]*; a Default-kind palette is never mutated
// by the store; the palette used by any kernel call must be non-empty.
type Palette struct {
	ID     string
	Source string
	Kind   PaletteKind
	Colors []Color
}

func (p Palette) toStore() store.Palette {
	colors := make([]store.Color, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = store.Color{R: c.R, G: c.G, B: c.B}
	}
	return store.Palette{ID: p.ID, Source: p.Source, Kind: store.Kind(p.Kind), Colors: colors}
}

func fromStorePalette(sp store.Palette) Palette {
	colors := make([]Color, len(sp.Colors))
	for i, c := range sp.Colors {
		colors[i] = Color{R: c.R, G: c.G, B: c.B}
	}
	return Palette{ID: sp.ID, Source: sp.Source, Kind: PaletteKind(sp.Kind), Colors: colors}
}

// Lab returns the Lab conversion of every palette entry, in order. This is
// the vector kernels operate against; conversions are confined to ingress.
func (p Palette) Lab() []colormath.Lab {
	labs := make([]colormath.Lab, len(p.Colors))
	for i, c := range p.Colors {
		labs[i] = colormath.SRGBToLab(c.R, c.G, c.B)
	}
	return labs
}

func (p Palette) rgbs() []colormath.RGB {
	rgbs := make([]colormath.RGB, len(p.Colors))
	for i, c := range p.Colors {
		rgbs[i] = colormath.RGB{R: c.R, G: c.G, B: c.B}
	}
	return rgbs
}
