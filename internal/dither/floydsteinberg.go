// Package dither implements Floyd-Steinberg error diffusion and blue-noise
// threshold dithering for the Palettized mapping. Both bypass the LUT and
// the per-thread cache, since identical RGBA inputs can map to different
// outputs depending on position or accumulated error -- grounded on
// other_examples/758442eb_zouhuigang-quant__quant.go.go's Dither211 for
// the Go error-diffusion idiom, with the exact weights and transparency
// handling taken from original_source/core/src/dithered.rs.
package dither

import "github.com/palettum/palettum/internal/colormath"

type rgbErr struct {
	r, g, b float32
}

// FloydSteinberg applies serial Floyd-Steinberg error diffusion in place
// over an RGBA buffer. It is strictly single-threaded: row N's output
// error feeds row N+1, so correctness depends on scan order.
func FloydSteinberg(pix []byte, width, height int, paletteLab []colormath.Lab, palette []colormath.RGB, formula colormath.Formula, transparencyThreshold uint8, ditherStrength float32, closest func(colormath.Lab, []colormath.Lab, []colormath.RGB, colormath.Formula) colormath.RGB) {
	cur := make([]rgbErr, width)
	next := make([]rgbErr, width)

	for y := 0; y < height; y++ {
		for i := range next {
			next[i] = rgbErr{}
		}
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 4
			r, g, b, a := pix[idx], pix[idx+1], pix[idx+2], pix[idx+3]

			if a < transparencyThreshold {
				pix[idx] = 0
				pix[idx+1] = 0
				pix[idx+2] = 0
				pix[idx+3] = 0
				cur[x] = rgbErr{}
				continue
			}

			tr := clamp255(float32(r) + cur[x].r)
			tg := clamp255(float32(g) + cur[x].g)
			tb := clamp255(float32(b) + cur[x].b)

			lab := colormath.SRGBToLab(uint8(tr+0.5), uint8(tg+0.5), uint8(tb+0.5))
			chosen := closest(lab, paletteLab, palette, formula)

			pix[idx] = chosen.R
			pix[idx+1] = chosen.G
			pix[idx+2] = chosen.B
			pix[idx+3] = 255

			er := (tr - float32(chosen.R)) * ditherStrength
			eg := (tg - float32(chosen.G)) * ditherStrength
			eb := (tb - float32(chosen.B)) * ditherStrength

			if x+1 < width {
				cur[x+1].r += er * 7 / 16
				cur[x+1].g += eg * 7 / 16
				cur[x+1].b += eb * 7 / 16
			}
			if y+1 < height {
				if x-1 >= 0 {
					next[x-1].r += er * 3 / 16
					next[x-1].g += eg * 3 / 16
					next[x-1].b += eb * 3 / 16
				}
				next[x].r += er * 5 / 16
				next[x].g += eg * 5 / 16
				next[x].b += eb * 5 / 16
				if x+1 < width {
					next[x+1].r += er * 1 / 16
					next[x+1].g += eg * 1 / 16
					next[x+1].b += eb * 1 / 16
				}
			}
		}
		cur, next = next, cur
	}
}

func clamp255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
