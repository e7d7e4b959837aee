package dither

import "github.com/palettum/palettum/internal/colormath"

// BlueNoise applies independent per-pixel threshold dithering. Unlike
// FloydSteinberg it has no cross-pixel dependency and is safe to run over
// disjoint chunks in parallel.
//
// dither_strength's meaning for blue noise is an open question in the
// source this was distilled from (see SPEC_FULL.md section 9); this
// implementation resolves it as offset = (tau-0.5) * 2 * strength * 255,
// the scaling spec.md itself proposes for 8-bit channels.
func BlueNoise(pix []byte, width, height int, paletteLab []colormath.Lab, palette []colormath.RGB, formula colormath.Formula, transparencyThreshold uint8, ditherStrength float32, closest func(colormath.Lab, []colormath.Lab, []colormath.RGB, colormath.Formula) colormath.RGB) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 4
			r, g, b, a := pix[idx], pix[idx+1], pix[idx+2], pix[idx+3]

			if a < transparencyThreshold {
				pix[idx] = 0
				pix[idx+1] = 0
				pix[idx+2] = 0
				pix[idx+3] = 0
				continue
			}

			tau := float32(Mask(x, y)) / 255
			offset := (tau - 0.5) * 2 * ditherStrength * 255

			or := clamp255(float32(r) + offset)
			og := clamp255(float32(g) + offset)
			ob := clamp255(float32(b) + offset)

			lab := colormath.SRGBToLab(uint8(or+0.5), uint8(og+0.5), uint8(ob+0.5))
			chosen := closest(lab, paletteLab, palette, formula)

			pix[idx] = chosen.R
			pix[idx+1] = chosen.G
			pix[idx+2] = chosen.B
			pix[idx+3] = 255
		}
	}
}
