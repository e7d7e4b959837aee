package kernel

import (
	"github.com/chewxy/math32"

	"github.com/palettum/palettum/internal/colormath"
)

// WeightFormula selects the radial weight function for the Smoothed kernel.
type WeightFormula int

const (
	Idw WeightFormula = iota
	Gaussian
	Rq
)

// SmoothedParams carries the pieces of Config the smoothed kernel needs,
// kept free of the root package to avoid an import cycle.
type SmoothedParams struct {
	Formula  WeightFormula
	Strength float32 // smoothing_strength, [0,1]
	LabScales [3]float32
}

const weightEpsilon = 1e-9

// strengthT maps smoothing_strength to the normalized [0,1] interpolant t
// used by every weight function's parameter schedule.
func strengthT(strength float32) float32 {
	t := (strength - 0.1) / 0.9
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}

func weight(d, d2 float32, p SmoothedParams) float32 {
	t := strengthT(p.Strength)
	switch p.Formula {
	case Gaussian:
		sigma := 10*(1-t) + 50*t
		if sigma <= 0 {
			if d == 0 {
				return 1
			}
			return 0
		}
		return math32.Exp(-d2 / (2 * sigma * sigma))
	case Rq:
		const alpha = 1.0
		length := 1*(1-t) + 30*t
		if length <= 0 {
			if d == 0 {
				return 1
			}
			return 0
		}
		return math32.Pow(1+d2/(2*alpha*length*length), -alpha)
	default: // Idw
		power := 5*(1-t) + 1*t
		return 1 / (math32.Pow(d, power) + weightEpsilon)
	}
}

// SmoothedClosestRGB blends every palette entry, weighting by an
// anisotropic perceptual distance, and returns the Lab centroid converted
// to sRGB. If the total weight collapses to ~0 (degenerate configuration),
// it falls back to the nearest palette entry under CIEDE2000.
func SmoothedClosestRGB(reference colormath.Lab, paletteLab []colormath.Lab, palette []colormath.RGB, p SmoothedParams) colormath.RGB {
	sl, sa, sb := p.LabScales[0], p.LabScales[1], p.LabScales[2]

	var sumW, sumL, sumA, sumB float32
	for _, c := range paletteLab {
		dl := reference.L - c.L
		da := reference.A - c.A
		db := reference.B - c.B
		d2 := sl*dl*dl + sa*da*da + sb*db*db
		d := math32.Sqrt(d2)
		w := weight(d, d2, p)
		if w <= weightEpsilon {
			continue
		}
		sumW += w
		sumL += w * c.L
		sumA += w * c.A
		sumB += w * c.B
	}

	if sumW <= weightEpsilon {
		// Degenerate configuration (spec section 4.3): fall back to the
		// nearest entry under CIEDE2000.
		return PalettizedClosestRGB(reference, paletteLab, palette, colormath.CIEDE2000)
	}

	l := clamp(sumL/sumW, 0, 100)
	a := clamp(sumA/sumW, -128, 127)
	b := clamp(sumB/sumW, -128, 127)

	r, g, bb := colormath.LabToSRGB(colormath.Lab{L: l, A: a, B: b})
	return colormath.RGB{R: r, G: g, B: bb}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
