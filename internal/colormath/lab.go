// Package colormath implements sRGB/Lab color conversion and the
// perceptual distance formulas (CIE76/CIE94/CIEDE2000) used throughout the
// mapping kernels. All distance math happens in Lab; sRGB conversions are
// confined to ingress and egress.
package colormath

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// D65 reference white, matching the standard 2-degree observer.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883

	epsilon = 0.008856
	kappa   = 903.3
)

// linSRGBToXYZ is the D65 linear-sRGB to XYZ matrix, expressed the way
// soypat-colorspace builds its color matrices: a ms3.Mat3 driven through
// ms3.MulMatVec rather than nine loose float multiplies.
var linSRGBToXYZ = ms3.NewMat3([]float32{
	0.4124564, 0.3575761, 0.1804375,
	0.2126729, 0.7151522, 0.0721750,
	0.0193339, 0.1191920, 0.9503041,
})

var xyzToLinSRGB = ms3.NewMat3([]float32{
	3.2404542, -1.5371385, -0.4985314,
	-0.9692660, 1.8760108, 0.0415560,
	0.0556434, -0.2040259, 1.0572252,
})

// Lab is a perceptual CIELAB color. L is in [0,100]; a,b roughly [-128,127].
type Lab struct {
	L, A, B float32
}

// RGB is an 8-bit sRGB color with no alpha; palette entries are RGB.
type RGB struct {
	R, G, B uint8
}

func pivotXYZ(t float32) float32 {
	if t > epsilon {
		return math32.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}

func pivotXYZInv(t float32) float32 {
	t3 := t * t * t
	if t3 > epsilon {
		return t3
	}
	return (116*t - 16) / kappa
}

// SRGBToLab converts an 8-bit sRGB triple to Lab using a 2.2-gamma
// decode approximation and the D65 linear-to-XYZ matrix.
func SRGBToLab(r, g, b uint8) Lab {
	rl := math32.Pow(float32(r)/255, 2.2)
	gl := math32.Pow(float32(g)/255, 2.2)
	bl := math32.Pow(float32(b)/255, 2.2)

	xyz := ms3.MulMatVec(linSRGBToXYZ, ms3.Vec{X: rl, Y: gl, Z: bl})
	x := xyz.X * 100 / whiteX
	y := xyz.Y * 100 / whiteY
	z := xyz.Z * 100 / whiteZ

	fx, fy, fz := pivotXYZ(x), pivotXYZ(y), pivotXYZ(z)

	l := 116*fy - 16
	if l < 0 {
		l = 0
	}
	return Lab{
		L: l,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func clampU8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func gammaEncode(linear float32) float32 {
	if linear <= 0 {
		return 0
	}
	return math32.Pow(linear, 1/2.2)
}

// LabToSRGB inverts SRGBToLab; output channels are clamped to [0,255]
// after companding. This is not an exact inverse of SRGBToLab (±2 per
// channel is the documented round-trip tolerance).
func LabToSRGB(c Lab) (uint8, uint8, uint8) {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	x := pivotXYZInv(fx) * whiteX / 100
	y := pivotXYZInv(fy) * whiteY / 100
	z := pivotXYZInv(fz) * whiteZ / 100

	lin := ms3.MulMatVec(xyzToLinSRGB, ms3.Vec{X: x, Y: y, Z: z})

	r := clampU8(gammaEncode(lin.X) * 255)
	g := clampU8(gammaEncode(lin.Y) * 255)
	b := clampU8(gammaEncode(lin.Z) * 255)
	return r, g, b
}
