package pipeline

import (
	"testing"

	"github.com/palettum/palettum/internal/colormath"
	"github.com/palettum/palettum/internal/kernel"
)

func blackWhitePalette() ([]colormath.Lab, []colormath.RGB) {
	rgb := []colormath.RGB{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}}
	lab := []colormath.Lab{colormath.SRGBToLab(0, 0, 0), colormath.SRGBToLab(255, 255, 255)}
	return lab, rgb
}

func solidBuffer(width, height int, r, g, b, a uint8) []byte {
	pix := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		off := i * 4
		pix[off], pix[off+1], pix[off+2], pix[off+3] = r, g, b, a
	}
	return pix
}

func TestProcessPalettizedSnapsToNearestEntry(t *testing.T) {
	lab, rgb := blackWhitePalette()
	pix := solidBuffer(4, 4, 200, 200, 200, 255)
	Process(pix, 4, 4, lab, rgb, Params{
		Formula:               colormath.CIE76,
		TransparencyThreshold: 128,
		NumThreads:            2,
	})
	for i := 0; i < 4*4; i++ {
		off := i * 4
		if pix[off] != 255 || pix[off+1] != 255 || pix[off+2] != 255 {
			t.Fatalf("pixel %d: (%d,%d,%d), want white (nearest to light gray)", i, pix[off], pix[off+1], pix[off+2])
		}
		if pix[off+3] != 255 {
			t.Fatalf("pixel %d: alpha %d, want forced 255 under Palettized", i, pix[off+3])
		}
	}
}

func TestProcessTransparencyShortCircuit(t *testing.T) {
	lab, rgb := blackWhitePalette()
	pix := solidBuffer(2, 2, 200, 200, 200, 10)
	Process(pix, 2, 2, lab, rgb, Params{
		Formula:               colormath.CIE76,
		TransparencyThreshold: 128,
		NumThreads:            1,
	})
	for i := 0; i < 2*2; i++ {
		off := i * 4
		if pix[off] != 0 || pix[off+1] != 0 || pix[off+2] != 0 || pix[off+3] != 0 {
			t.Fatalf("pixel %d: below-threshold alpha not zeroed: %v", i, pix[off:off+4])
		}
	}
}

func TestProcessSmoothedPreservesAlpha(t *testing.T) {
	lab, rgb := blackWhitePalette()
	pix := solidBuffer(2, 2, 100, 100, 100, 77)
	Process(pix, 2, 2, lab, rgb, Params{
		Smoothed: true,
		SmoothedParams: kernel.SmoothedParams{
			Formula:   kernel.Idw,
			Strength:  0.5,
			LabScales: [3]float32{1, 1, 1},
		},
		NumThreads: 1,
	})
	for i := 0; i < 2*2; i++ {
		off := i * 4
		if pix[off+3] != 77 {
			t.Fatalf("pixel %d: alpha = %d, want preserved 77 under Smoothed", i, pix[off+3])
		}
	}
}

func TestProcessSingleVsMultiThreadAgree(t *testing.T) {
	lab, rgb := blackWhitePalette()
	p := Params{Formula: colormath.CIE76, TransparencyThreshold: 128, NumThreads: 1}
	pixA := solidBuffer(6, 6, 90, 140, 60, 255)
	pixB := append([]byte(nil), pixA...)
	Process(pixA, 6, 6, lab, rgb, p)
	p.NumThreads = 4
	Process(pixB, 6, 6, lab, rgb, p)
	for i := range pixA {
		if pixA[i] != pixB[i] {
			t.Fatalf("byte %d differs between single and multi-threaded runs: %d vs %d", i, pixA[i], pixB[i])
		}
	}
}
