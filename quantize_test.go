package palettum

import (
	"testing"

	"github.com/palettum/palettum/internal/colormath"
)

func TestPaletteFromPixelsEmptyIsInvalid(t *testing.T) {
	_, err := PaletteFromPixels(nil, 4, "test")
	e, ok := err.(*Error)
	if !ok || e.Kind != InvalidPaletteFromMedia {
		t.Errorf("err = %v, want Kind=InvalidPaletteFromMedia", err)
	}
}

func TestPaletteFromPixelsUniformColor(t *testing.T) {
	lab := colormath.SRGBToLab(30, 60, 90)
	pixels := make([]colormath.Lab, 10)
	for i := range pixels {
		pixels[i] = lab
	}
	pal, err := PaletteFromPixels(pixels, 3, "unit-test")
	if err != nil {
		t.Fatalf("PaletteFromPixels: %v", err)
	}
	if len(pal.Colors) != 1 {
		t.Fatalf("len(Colors) = %d, want 1", len(pal.Colors))
	}
	if pal.Source != "unit-test" {
		t.Errorf("Source = %q, want %q", pal.Source, "unit-test")
	}
}
