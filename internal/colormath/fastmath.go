package colormath

import "math"

// Fast polynomial approximations used only inside the inner CIEDE2000
// batch path. They must not break ΔE ordering for palette entries
// differing by more than ~0.01; callers needing exact results should use
// the math32/stdlib equivalents directly.

// fastSin approximates sin(x) for small x via a single Taylor term.
func fastSin(x float32) float32 {
	return x * (1 - x*x/6)
}

// fastCos approximates cos(x) via a one-step quarter-period fold onto
// fastSin, valid for the h' angle range CIEDE2000 produces.
func fastCos(x float32) float32 {
	const halfPi = math.Pi / 2
	return fastSin(halfPi - x)
}

// Schraudolph's bit-reinterpretation exp approximation.
const (
	schraudolphA = 12102203.0
	schraudolphB = 1065054451
)

func fastExp(x float32) float32 {
	i := int32(schraudolphA*x) + schraudolphB
	return math.Float32frombits(uint32(i))
}

// fastAtan implements the Efficient Approximation (Rajan et al., 2006)
// for atan(x), valid on x in [-1,1].
func fastAtan(x float32) float32 {
	const piOver4 = math.Pi / 4
	ax := x
	if ax < 0 {
		ax = -ax
	}
	return piOver4*x - x*(ax-1)*(0.2447+0.0663*ax)
}

// fastAtan2 resolves the four-quadrant angle on top of fastAtan,
// epsilon-guarding both the near-zero-denominator and near-zero-both cases.
func fastAtan2(y, x float32) float32 {
	const eps = 1e-12
	if x > eps {
		return fastAtan(y / x)
	}
	if x < -eps {
		if y >= 0 {
			return fastAtan(y/x) + math.Pi
		}
		return fastAtan(y/x) - math.Pi
	}
	// x is ~0.
	if y > eps {
		return math.Pi / 2
	}
	if y < -eps {
		return -math.Pi / 2
	}
	return 0
}

// pow7 computes x^7 via repeated squaring: x * x^2 * (x^2)^2.
func pow7(x float32) float32 {
	x2 := x * x
	return x * x2 * (x2 * x2)
}
