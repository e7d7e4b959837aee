// Package kernel implements the two pixel-to-palette mapping regimes:
// Palettized (nearest-entry search) and Smoothed (anisotropic weighted
// blend).
package kernel

import "github.com/palettum/palettum/internal/colormath"

// PalettizedClosestRGB returns the palette entry minimizing
// delta_e(reference, entry) under formula. Ties are broken by first-seen
// index (stable argmin via strict less-than), matching
// sctaw-aaaaxy's lookupNearest idiom. This is the per-pixel argmin scan
// that runs colormath.DeltaEBatch's fast-approximated CIEDE2000 in its
// inner loop rather than the exact scalar form.
func PalettizedClosestRGB(reference colormath.Lab, paletteLab []colormath.Lab, palette []colormath.RGB, formula colormath.Formula) colormath.RGB {
	best := 0
	bestD := colormath.DeltaEBatch(formula, reference, paletteLab[0])
	for i := 1; i < len(paletteLab); i++ {
		d := colormath.DeltaEBatch(formula, reference, paletteLab[i])
		if d < bestD {
			best, bestD = i, d
		}
	}
	return palette[best]
}
