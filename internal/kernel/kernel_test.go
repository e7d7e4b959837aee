package kernel

import (
	"testing"

	"github.com/palettum/palettum/internal/colormath"
)

func samplePalette() ([]colormath.Lab, []colormath.RGB) {
	rgb := []colormath.RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
	}
	lab := make([]colormath.Lab, len(rgb))
	for i, c := range rgb {
		lab[i] = colormath.SRGBToLab(c.R, c.G, c.B)
	}
	return lab, rgb
}

func TestPalettizedClosestRGBExactMatch(t *testing.T) {
	lab, rgb := samplePalette()
	for i, c := range rgb {
		ref := colormath.SRGBToLab(c.R, c.G, c.B)
		got := PalettizedClosestRGB(ref, lab, rgb, colormath.CIEDE2000)
		if got != rgb[i] {
			t.Errorf("entry %d: got %v, want exact match %v", i, got, rgb[i])
		}
	}
}

func TestPalettizedClosestRGBNearWhite(t *testing.T) {
	lab, rgb := samplePalette()
	ref := colormath.SRGBToLab(240, 240, 240)
	got := PalettizedClosestRGB(ref, lab, rgb, colormath.CIE76)
	if got != (colormath.RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("near-white reference mapped to %v, want white", got)
	}
}

func TestSmoothedClosestRGBBlendsTowardNeighbors(t *testing.T) {
	lab, rgb := samplePalette()
	p := SmoothedParams{Formula: Idw, Strength: 0.8, LabScales: [3]float32{1, 1, 1}}
	ref := colormath.SRGBToLab(200, 200, 200) // between black and white
	got := SmoothedClosestRGB(ref, lab, rgb, p)
	// Should land somewhere bright (closer to white than to red/green/black),
	// not identical to any single entry necessarily, but not black.
	if got == (colormath.RGB{R: 0, G: 0, B: 0}) {
		t.Errorf("smoothed blend of a near-white reference collapsed to black")
	}
}

func TestSmoothedClosestRGBSingleEntryIsExact(t *testing.T) {
	rgb := []colormath.RGB{{R: 10, G: 20, B: 30}}
	lab := []colormath.Lab{colormath.SRGBToLab(10, 20, 30)}
	p := SmoothedParams{Formula: Gaussian, Strength: 0.5, LabScales: [3]float32{1, 1, 1}}
	ref := colormath.SRGBToLab(200, 200, 200)
	got := SmoothedClosestRGB(ref, lab, rgb, p)
	if got != rgb[0] {
		t.Errorf("single-entry palette must blend to that entry exactly, got %v", got)
	}
}

func TestStrengthTClampedToUnitInterval(t *testing.T) {
	const tol = 1e-4
	if got := strengthT(0); got != 0 {
		t.Errorf("strengthT(0) = %v, want 0", got)
	}
	if got := strengthT(1); got < 1-tol || got > 1+tol {
		t.Errorf("strengthT(1) = %v, want ~1", got)
	}
	if got := strengthT(0.1); got < -tol || got > tol {
		t.Errorf("strengthT(0.1) = %v, want ~0", got)
	}
}
