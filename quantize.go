package palettum

import (
	"errors"

	"github.com/palettum/palettum/internal/colormath"
	"github.com/palettum/palettum/internal/quantize"
)

// PaletteFromPixels extracts a palette of at most min(k, 255) colors from
// a slice of Lab pixels via the Wu quantizer. It returns fewer than k
// colors when further splitting would only produce zero-variance cubes,
// and InvalidPaletteFromMedia when pixels is empty or k is 0.
func PaletteFromPixels(pixels []colormath.Lab, k int, source string) (Palette, error) {
	colors, err := quantize.ExtractColors(pixels, k)
	if err != nil {
		if errors.Is(err, quantize.ErrEmptyInput) || errors.Is(err, quantize.ErrZeroK) {
			return Palette{}, newError(InvalidPaletteFromMedia)
		}
		return Palette{}, &Error{Kind: IoError, Inner: err}
	}
	out := make([]Color, len(colors))
	for i, c := range colors {
		out[i] = Color{R: c.R, G: c.G, B: c.B}
	}
	return Palette{Kind: PaletteUnset, Source: source, Colors: out}, nil
}
