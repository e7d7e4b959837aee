package palettum

import (
	"github.com/palettum/palettum/internal/colormath"
	"github.com/palettum/palettum/internal/kernel"
	"github.com/palettum/palettum/internal/pipeline"
)

// Palettify remaps an RGBA pixel buffer in place according to cfg.
// pix must have exactly width*height*4 bytes in row-major RGBA order.
// cfg.Validate() is a precondition; Palettify calls it internally and
// returns its error unchanged if validation fails.
//
// Grounded on original_source/core/src/processing.rs's top-level
// process_pixels: Lab-palette precomputation once per call, then dispatch
// into the pixel pipeline.
func Palettify(pix []byte, width, height int, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(pix) != width*height*4 {
		return &Error{Kind: InvalidGifFile, Field: "pixel buffer size does not match width*height*4"}
	}

	paletteLab := cfg.Palette.Lab()
	paletteRGB := cfg.Palette.rgbs()

	p := pipeline.Params{
		Smoothed:              cfg.Mapping == Smoothed,
		Formula:               toColormathFormula(cfg.PalettizedFormula),
		TransparencyThreshold: cfg.TransparencyThreshold,
		DitherAlgorithm:       toPipelineDither(cfg.DitherAlgorithm),
		DitherStrength:        cfg.DitherStrength,
		NumThreads:            cfg.NumThreads,
		QuantLevel:            cfg.QuantLevel,
	}
	if p.Smoothed {
		p.SmoothedParams = kernel.SmoothedParams{
			Formula:   toKernelWeightFormula(cfg.SmoothedFormula),
			Strength:  cfg.SmoothingStrength,
			LabScales: cfg.LabScales,
		}
	}

	pipeline.Process(pix, width, height, paletteLab, paletteRGB, p)
	return nil
}

func toColormathFormula(f PalettizedFormula) colormath.Formula {
	switch f {
	case CIE94:
		return colormath.CIE94
	case CIEDE2000:
		return colormath.CIEDE2000
	default:
		return colormath.CIE76
	}
}

func toKernelWeightFormula(f SmoothedFormula) kernel.WeightFormula {
	switch f {
	case Gaussian:
		return kernel.Gaussian
	case Rq:
		return kernel.Rq
	default:
		return kernel.Idw
	}
}

func toPipelineDither(d DitherAlgorithm) pipeline.DitherAlgorithm {
	switch d {
	case DitherFloydSteinberg:
		return pipeline.DitherFloydSteinberg
	case DitherBlueNoise:
		return pipeline.DitherBlueNoise
	default:
		return pipeline.DitherNone
	}
}
