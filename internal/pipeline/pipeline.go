// Package pipeline implements the per-pixel acceleration pipeline: fast
// path dispatch (LUT hit / cache hit / direct compute), transparency
// short-circuiting, and work partitioning across a parallel worker pool.
//
// The row-chunk worker idiom is grounded on
// deepteams-webp/internal/lossy/encode_parallel.go's RowWorker/
// parallelState atomic row-claiming pattern, simplified here because
// pixel chunks have no cross-chunk dependency to synchronize (unlike
// VP8's top-context prediction) -- see SPEC_FULL.md section 5.
package pipeline

import (
	"log"
	"os"
	"sync"

	"github.com/palettum/palettum/internal/cache"
	"github.com/palettum/palettum/internal/colormath"
	"github.com/palettum/palettum/internal/dither"
	"github.com/palettum/palettum/internal/kernel"
	"github.com/palettum/palettum/internal/lut"
)

// Logger receives diagnostics for recoverable per-pixel failures (a LUT
// index miss that should not happen per spec section 7). It does not log
// on the happy path. Embedding applications may replace it.
var Logger = log.New(os.Stderr, "palettum: ", log.LstdFlags)

// DitherAlgorithm selects the dithering strategy.
type DitherAlgorithm int

const (
	DitherNone DitherAlgorithm = iota
	DitherFloydSteinberg
	DitherBlueNoise
)

// Params is the subset of Config the pipeline needs, kept free of the root
// package to avoid an import cycle.
type Params struct {
	Smoothed              bool
	Formula               colormath.Formula // palettized_formula
	SmoothedParams        kernel.SmoothedParams
	QuantLevel            uint8
	TransparencyThreshold uint8
	DitherAlgorithm       DitherAlgorithm
	DitherStrength        float32
	NumThreads            int
}

func computeMappedColor(r, g, b uint8, paletteLab []colormath.Lab, palette []colormath.RGB, p Params) colormath.RGB {
	lab := colormath.SRGBToLab(r, g, b)
	if p.Smoothed {
		return kernel.SmoothedClosestRGB(lab, paletteLab, palette, p.SmoothedParams)
	}
	return kernel.PalettizedClosestRGB(lab, paletteLab, palette, p.Formula)
}

func closestForDither(lab colormath.Lab, paletteLab []colormath.Lab, palette []colormath.RGB, formula colormath.Formula) colormath.RGB {
	return kernel.PalettizedClosestRGB(lab, paletteLab, palette, formula)
}

// Process maps every pixel of an RGBA buffer in place.
func Process(pix []byte, width, height int, paletteLab []colormath.Lab, palette []colormath.RGB, p Params) {
	if p.Smoothed || p.DitherAlgorithm == DitherNone {
		processNonDithered(pix, width, height, paletteLab, palette, p)
		return
	}
	switch p.DitherAlgorithm {
	case DitherFloydSteinberg:
		dither.FloydSteinberg(pix, width, height, paletteLab, palette, p.Formula, p.TransparencyThreshold, p.DitherStrength, closestForDither)
	case DitherBlueNoise:
		dither.BlueNoise(pix, width, height, paletteLab, palette, p.Formula, p.TransparencyThreshold, p.DitherStrength, closestForDither)
	}
}

func processNonDithered(pix []byte, width, height int, paletteLab []colormath.Lab, palette []colormath.RGB, p Params) {
	pixelCount := width * height

	var table lut.Table
	lutEligible := p.DitherAlgorithm == DitherNone && lut.Admit(p.QuantLevel, pixelCount)
	if lutEligible {
		key := lut.CacheKeyInput{
			QuantLevel:    p.QuantLevel,
			Smoothed:      p.Smoothed,
			Formula:       int(p.Formula),
			WeightFormula: int(p.SmoothedParams.Formula),
			Strength:      p.SmoothedParams.Strength,
			LabScales:     p.SmoothedParams.LabScales,
			Palette:       palette,
		}
		table = lut.GetOrBuild(key, p.NumThreads, func(r, g, b uint8) colormath.RGB {
			return computeMappedColor(r, g, b, paletteLab, palette, p)
		})
	}

	numThreads := p.NumThreads
	if numThreads < 1 {
		numThreads = 1
	}
	if numThreads > pixelCount {
		numThreads = pixelCount
	}
	if numThreads < 1 {
		numThreads = 1
	}

	chunk := (pixelCount + numThreads - 1) / numThreads

	work := func(loPixel, hiPixel int) {
		c := getThreadLocalCache()
		defer putThreadLocalCache(c)
		for i := loPixel; i < hiPixel; i++ {
			off := i * 4
			r, g, b, a := pix[off], pix[off+1], pix[off+2], pix[off+3]

			if a < p.TransparencyThreshold && !p.Smoothed {
				pix[off] = 0
				pix[off+1] = 0
				pix[off+2] = 0
				pix[off+3] = 0
				continue
			}

			outA := a
			if !p.Smoothed {
				outA = 255
			}

			if table.Built() {
				idx := table.Index(r, g, b)
				rgb, ok := table.Lookup(idx)
				if !ok {
					Logger.Printf("lut index out of bounds: index=%d size=%d", idx, len(table.Entries))
					continue
				}
				pix[off], pix[off+1], pix[off+2], pix[off+3] = rgb.R, rgb.G, rgb.B, outA
				continue
			}

			if cached, ok := c.Get(r, g, b, a); ok {
				pix[off], pix[off+1], pix[off+2], pix[off+3] = cached.R, cached.G, cached.B, cached.A
				continue
			}

			rgb := computeMappedColor(r, g, b, paletteLab, palette, p)
			out := cache.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: outA}
			c.Set(r, g, b, a, out)
			pix[off], pix[off+1], pix[off+2], pix[off+3] = out.R, out.G, out.B, out.A
		}
	}

	if numThreads == 1 {
		work(0, pixelCount)
		return
	}

	var wg sync.WaitGroup
	for lo := 0; lo < pixelCount; lo += chunk {
		hi := lo + chunk
		if hi > pixelCount {
			hi = pixelCount
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			work(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
