package quantize

import (
	"testing"

	"github.com/palettum/palettum/internal/colormath"
)

func TestExtractColorsEmptyInput(t *testing.T) {
	if _, err := ExtractColors(nil, 4); err != ErrEmptyInput {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}

func TestExtractColorsZeroK(t *testing.T) {
	pixels := []colormath.Lab{colormath.SRGBToLab(1, 2, 3)}
	if _, err := ExtractColors(pixels, 0); err != ErrZeroK {
		t.Errorf("err = %v, want ErrZeroK", err)
	}
}

func TestExtractColorsSingleColorCollapsesToOneEntry(t *testing.T) {
	var pixels []colormath.Lab
	for i := 0; i < 100; i++ {
		pixels = append(pixels, colormath.SRGBToLab(120, 60, 200))
	}
	colors, err := ExtractColors(pixels, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(colors) != 1 {
		t.Fatalf("len(colors) = %d, want 1 (uniform input cannot be split further)", len(colors))
	}
	c := colors[0]
	if absDiff(c.R, 120) > 3 || absDiff(c.G, 60) > 3 || absDiff(c.B, 200) > 3 {
		t.Errorf("extracted color %v, want close to (120,60,200)", c)
	}
}

func TestExtractColorsKClampedToMax(t *testing.T) {
	var pixels []colormath.Lab
	for r := 0; r < 255; r += 5 {
		pixels = append(pixels, colormath.SRGBToLab(uint8(r), uint8(255-r), uint8(r/2)))
	}
	colors, err := ExtractColors(pixels, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(colors) > 255 {
		t.Errorf("len(colors) = %d, want <= 255", len(colors))
	}
}

func TestExtractColorsTwoClustersSeparate(t *testing.T) {
	var pixels []colormath.Lab
	for i := 0; i < 50; i++ {
		pixels = append(pixels, colormath.SRGBToLab(5, 5, 5))
	}
	for i := 0; i < 50; i++ {
		pixels = append(pixels, colormath.SRGBToLab(250, 250, 250))
	}
	colors, err := ExtractColors(pixels, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("len(colors) = %d, want 2 for two well-separated clusters", len(colors))
	}
	lo, hi := colors[0], colors[1]
	if lo.R > hi.R {
		lo, hi = hi, lo
	}
	if lo.R > 40 {
		t.Errorf("dark cluster centroid R=%d, want close to 5", lo.R)
	}
	if hi.R < 200 {
		t.Errorf("light cluster centroid R=%d, want close to 250", hi.R)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
