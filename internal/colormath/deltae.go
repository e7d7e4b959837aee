package colormath

import "github.com/chewxy/math32"

// Formula selects the perceptual color-difference metric.
type Formula int

const (
	CIE76 Formula = iota
	CIE94
	CIEDE2000
)

const (
	kl = 1.0
	kc = 1.0
	kh = 1.0

	pow25To7 = 6103515625.0 // 25^7
)

// DeltaE computes the perceptual distance between two Lab colors under the
// given formula. This scalar form defines correctness and is what every
// formula is graded against; DeltaEBatch trades a bounded amount of that
// precision for speed in per-pixel argmin loops.
func DeltaE(f Formula, a, b Lab) float32 {
	switch f {
	case CIE94:
		return deltaE94(a, b)
	case CIEDE2000:
		return deltaE2000(a, b)
	default:
		return deltaE76(a, b)
	}
}

// DeltaEBatch is the variant used by the palettized kernel's per-pixel
// argmin search, which evaluates delta_e against every palette entry. For
// CIEDE2000 it substitutes fastmath.go's sin/cos/exp/atan2 approximations
// for deltaE2000's exact math32 calls; CIE76 and CIE94 have no defined fast
// approximation and run unchanged. The approximation must never reorder two
// palette entries whose exact ΔE differ by more than ~0.01.
func DeltaEBatch(f Formula, a, b Lab) float32 {
	if f == CIEDE2000 {
		return deltaE2000Fast(a, b)
	}
	return DeltaE(f, a, b)
}

func deltaE76(a, b Lab) float32 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math32.Sqrt(dl*dl + da*da + db*db)
}

func deltaE94(a, b Lab) float32 {
	const k1, k2 = 0.045, 0.015

	dl := a.L - b.L
	c1 := math32.Sqrt(a.A*a.A + a.B*a.B)
	c2 := math32.Sqrt(b.A*b.A + b.B*b.B)
	dc := c1 - c2

	da := a.A - b.A
	db := a.B - b.B
	dhSq := da*da + db*db - dc*dc
	var dh float32
	if dhSq > 0 {
		dh = math32.Sqrt(dhSq)
	}

	sl := float32(1.0)
	sc := 1 + k1*c1
	sh := 1 + k2*c1

	tl := dl / sl
	tc := dc / sc
	th := dh / sh
	return math32.Sqrt(tl*tl + tc*tc + th*th)
}

const pi = 3.14159265358979323846
const degToRad = pi / 180
const radToDeg = 180 / pi

func deltaE2000(color1, color2 Lab) float32 {
	l1, a1, b1 := color1.L, color1.A, color1.B
	l2, a2, b2 := color2.L, color2.A, color2.B

	c1 := math32.Sqrt(a1*a1 + b1*b1)
	c2 := math32.Sqrt(a2*a2 + b2*b2)

	cBar := (c1 + c2) * 0.5
	cBar7 := pow7(cBar)

	g := 0.5 * (1 - math32.Sqrt(cBar7/(cBar7+pow25To7)))

	a1Prime := a1 * (1 + g)
	a2Prime := a2 * (1 + g)

	c1Prime := math32.Sqrt(a1Prime*a1Prime + b1*b1)
	c2Prime := math32.Sqrt(a2Prime*a2Prime + b2*b2)

	h1Prime := math32.Atan2(b1, a1Prime) * radToDeg
	if h1Prime < 0 {
		h1Prime += 360
	}
	h2Prime := math32.Atan2(b2, a2Prime) * radToDeg
	if h2Prime < 0 {
		h2Prime += 360
	}

	deltaLPrime := l2 - l1
	deltaCPrime := c2Prime - c1Prime

	var deltaHPrimeLower float32
	if c1Prime != 0 && c2Prime != 0 {
		diff := h2Prime - h1Prime
		switch {
		case math32.Abs(diff) <= 180:
			deltaHPrimeLower = diff
		case diff > 180:
			deltaHPrimeLower = diff - 360
		default:
			deltaHPrimeLower = diff + 360
		}
	}

	deltaHPrimeUpper := 2 * math32.Sqrt(c1Prime*c2Prime) * math32.Sin(deltaHPrimeLower*degToRad*0.5)

	lBarPrime := (l1 + l2) * 0.5
	cBarPrime := (c1Prime + c2Prime) * 0.5

	var hBarPrime float32
	if c1Prime == 0 || c2Prime == 0 {
		hBarPrime = h1Prime + h2Prime
	} else {
		diff := math32.Abs(h1Prime - h2Prime)
		sum := h1Prime + h2Prime
		switch {
		case diff <= 180:
			hBarPrime = sum * 0.5
		case sum < 360:
			hBarPrime = (sum + 360) * 0.5
		default:
			hBarPrime = (sum - 360) * 0.5
		}
	}

	t := 1 - 0.17*math32.Cos((hBarPrime-30)*degToRad) +
		0.24*math32.Cos(2*hBarPrime*degToRad) +
		0.32*math32.Cos((3*hBarPrime+6)*degToRad) -
		0.20*math32.Cos((4*hBarPrime-63)*degToRad)

	deltaTheta := 30 * math32.Exp(-math32.Pow((hBarPrime-275)/25, 2))
	cBarPrime7 := pow7(cBarPrime)

	rc := 2 * math32.Sqrt(cBarPrime7/(cBarPrime7+pow25To7))
	rt := -rc * math32.Sin(2*deltaTheta*degToRad)

	lBarMinus50Sq := (lBarPrime - 50) * (lBarPrime - 50)
	sl := 1 + (0.015*lBarMinus50Sq)/math32.Sqrt(20+lBarMinus50Sq)
	sc := 1 + 0.045*cBarPrime
	sh := 1 + 0.015*cBarPrime*t

	term1 := deltaLPrime / (kl * sl)
	term2 := deltaCPrime / (kc * sc)
	term3 := deltaHPrimeUpper / (kh * sh)

	return math32.Sqrt(term1*term1 + term2*term2 + term3*term3 + rt*term2*term3)
}

// deltaE2000Fast mirrors deltaE2000's derivation exactly, substituting
// fastmath.go's fastSin/fastCos/fastExp/fastAtan2 for math32's trig, exp
// and atan2. The hBarPrime cosine series and the rc/rt rotation term are
// the ones that actually sit in the per-palette-entry hot loop; cBar7 and
// cBarPrime7 already share the exact pow7 helper with deltaE2000.
func deltaE2000Fast(color1, color2 Lab) float32 {
	l1, a1, b1 := color1.L, color1.A, color1.B
	l2, a2, b2 := color2.L, color2.A, color2.B

	c1 := math32.Sqrt(a1*a1 + b1*b1)
	c2 := math32.Sqrt(a2*a2 + b2*b2)

	cBar := (c1 + c2) * 0.5
	cBar7 := pow7(cBar)

	g := 0.5 * (1 - math32.Sqrt(cBar7/(cBar7+pow25To7)))

	a1Prime := a1 * (1 + g)
	a2Prime := a2 * (1 + g)

	c1Prime := math32.Sqrt(a1Prime*a1Prime + b1*b1)
	c2Prime := math32.Sqrt(a2Prime*a2Prime + b2*b2)

	h1Prime := fastAtan2(b1, a1Prime) * radToDeg
	if h1Prime < 0 {
		h1Prime += 360
	}
	h2Prime := fastAtan2(b2, a2Prime) * radToDeg
	if h2Prime < 0 {
		h2Prime += 360
	}

	deltaLPrime := l2 - l1
	deltaCPrime := c2Prime - c1Prime

	var deltaHPrimeLower float32
	if c1Prime != 0 && c2Prime != 0 {
		diff := h2Prime - h1Prime
		switch {
		case math32.Abs(diff) <= 180:
			deltaHPrimeLower = diff
		case diff > 180:
			deltaHPrimeLower = diff - 360
		default:
			deltaHPrimeLower = diff + 360
		}
	}

	deltaHPrimeUpper := 2 * math32.Sqrt(c1Prime*c2Prime) * fastSin(deltaHPrimeLower*degToRad*0.5)

	lBarPrime := (l1 + l2) * 0.5
	cBarPrime := (c1Prime + c2Prime) * 0.5

	var hBarPrime float32
	if c1Prime == 0 || c2Prime == 0 {
		hBarPrime = h1Prime + h2Prime
	} else {
		diff := math32.Abs(h1Prime - h2Prime)
		sum := h1Prime + h2Prime
		switch {
		case diff <= 180:
			hBarPrime = sum * 0.5
		case sum < 360:
			hBarPrime = (sum + 360) * 0.5
		default:
			hBarPrime = (sum - 360) * 0.5
		}
	}

	t := 1 - 0.17*fastCos((hBarPrime-30)*degToRad) +
		0.24*fastCos(2*hBarPrime*degToRad) +
		0.32*fastCos((3*hBarPrime+6)*degToRad) -
		0.20*fastCos((4*hBarPrime-63)*degToRad)

	hBarOffset := (hBarPrime - 275) / 25
	deltaTheta := 30 * fastExp(-(hBarOffset * hBarOffset))
	cBarPrime7 := pow7(cBarPrime)

	rc := 2 * math32.Sqrt(cBarPrime7/(cBarPrime7+pow25To7))
	rt := -rc * fastSin(2*deltaTheta*degToRad)

	lBarMinus50Sq := (lBarPrime - 50) * (lBarPrime - 50)
	sl := 1 + (0.015*lBarMinus50Sq)/math32.Sqrt(20+lBarMinus50Sq)
	sc := 1 + 0.045*cBarPrime
	sh := 1 + 0.015*cBarPrime*t

	term1 := deltaLPrime / (kl * sl)
	term2 := deltaCPrime / (kc * sc)
	term3 := deltaHPrimeUpper / (kh * sh)

	return math32.Sqrt(term1*term1 + term2*term2 + term3*term3 + rt*term2*term3)
}
