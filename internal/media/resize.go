// Package media adapts decoded media (still images, animated GIF frame
// sequences, multi-resolution icon bundles) onto the core pixel pipeline:
// a resize step plus per-frame dispatch into palettum.Palettify. Media
// container decoding/encoding itself (PNG/GIF/ICO byte parsing) stays an
// external collaborator; this package only consumes already-decoded
// image.Image values.
package media

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/palettum/palettum"
)

// lanczos3Kernel is a hand-built draw.Kernel since golang.org/x/image/draw
// ships only up to CatmullRom; grounded on sctaw-aaaaxy's go.mod
// dependency on golang.org/x/image for the resize family named in
// spec.md's Config.resize_filter.
var lanczos3Kernel = draw.Kernel{
	Support: 3,
	At: func(x float64) float64 {
		if x == 0 {
			return 1
		}
		ax := math.Abs(x)
		if ax >= 3 {
			return 0
		}
		piX := math.Pi * x
		return 3 * math.Sin(piX) * math.Sin(piX/3) / (piX * piX)
	},
}

func kernelFor(f palettum.ResizeFilter) draw.Interpolator {
	switch f {
	case palettum.Nearest:
		return draw.NearestNeighbor
	case palettum.Triangle:
		return draw.ApproxBiLinear
	default:
		return lanczos3Kernel
	}
}

// resizeTargetDims mirrors original_source's resize_image_if_needed
// width/height/scale combination matrix, preserving aspect ratio when
// only one of width/height is given.
func resizeTargetDims(srcW, srcH int, cfg palettum.Config) (int, int, bool) {
	w, h := srcW, srcH
	changed := false

	switch {
	case cfg.ResizeWidth != nil && cfg.ResizeHeight != nil:
		w, h = int(*cfg.ResizeWidth), int(*cfg.ResizeHeight)
		changed = true
	case cfg.ResizeWidth != nil:
		w = int(*cfg.ResizeWidth)
		h = int(float64(srcH) * float64(w) / float64(srcW))
		changed = true
	case cfg.ResizeHeight != nil:
		h = int(*cfg.ResizeHeight)
		w = int(float64(srcW) * float64(h) / float64(srcH))
		changed = true
	case cfg.ResizeScale != nil:
		w = int(float64(srcW) * float64(*cfg.ResizeScale))
		h = int(float64(srcH) * float64(*cfg.ResizeScale))
		changed = true
	}

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h, changed
}

// Resize returns img resized per cfg's resize_{width,height,scale,filter}
// fields, or img unchanged if none are set. The reference order (resize
// before palettify) is used throughout this package, per spec.md section
// 9's "Resize coupling" note.
func Resize(img *image.NRGBA, cfg palettum.Config) *image.NRGBA {
	srcB := img.Bounds()
	w, h, changed := resizeTargetDims(srcB.Dx(), srcB.Dy(), cfg)
	if !changed {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	kernelFor(cfg.ResizeFilter).Scale(dst, dst.Bounds(), img, srcB, draw.Over, nil)
	return dst
}
