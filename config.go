package palettum

import "runtime"

// Mapping selects the pixel-to-palette regime.
type Mapping int

const (
	Palettized Mapping = iota
	Smoothed
)

// PalettizedFormula selects the perceptual distance metric used by the
// Palettized kernel and by dithering.
type PalettizedFormula int

const (
	CIE76 PalettizedFormula = iota
	CIE94
	CIEDE2000
)

// SmoothedFormula selects the radial weight function used by the Smoothed
// kernel.
type SmoothedFormula int

const (
	Idw SmoothedFormula = iota
	Gaussian
	Rq
)

// DitherAlgorithm selects the dithering strategy for Palettized mapping.
type DitherAlgorithm int

const (
	DitherNone DitherAlgorithm = iota
	DitherFloydSteinberg
	DitherBlueNoise
)

// ResizeFilter selects the resampling kernel used by the resize step.
type ResizeFilter int

const (
	Nearest ResizeFilter = iota
	Triangle
	Lanczos3
)

// Config is the full parameter bundle consumed by the pipeline. Validate
// is a precondition of every kernel entry point.
type Config struct {
	Palette Palette

	Mapping            Mapping
	PalettizedFormula  PalettizedFormula
	SmoothedFormula    SmoothedFormula
	SmoothingStrength  float32
	LabScales          [3]float32
	QuantLevel         uint8
	TransparencyThreshold uint8
	DitherAlgorithm    DitherAlgorithm
	DitherStrength     float32
	NumThreads         int

	ResizeWidth  *uint32
	ResizeHeight *uint32
	ResizeScale  *float32
	ResizeFilter ResizeFilter
}

// DefaultConfig returns a Config matching spec.md's documented defaults.
// Palette is left empty; callers must set it before Validate succeeds.
func DefaultConfig() Config {
	return Config{
		Mapping:               Smoothed,
		PalettizedFormula:     CIEDE2000,
		SmoothedFormula:       Idw,
		SmoothingStrength:     0.5,
		LabScales:             [3]float32{1, 1, 1},
		QuantLevel:            0,
		TransparencyThreshold: 128,
		DitherAlgorithm:       DitherNone,
		DitherStrength:        1.0,
		NumThreads:            runtime.NumCPU(),
		ResizeFilter:          Lanczos3,
	}
}

// Validate checks every bounds rule from spec.md section 3 and returns a
// precise *Error on the first violation found.
func (c Config) Validate() error {
	if len(c.Palette.Colors) == 0 {
		return newError(EmptyPalette)
	}
	if c.QuantLevel > 5 {
		return &Error{Kind: InvalidQuantLevel, Value: int(c.QuantLevel), Max: 5}
	}
	if c.SmoothingStrength < 0 || c.SmoothingStrength > 1 {
		return &Error{Kind: InvalidSmoothingStrength, Float: c.SmoothingStrength}
	}
	for _, s := range c.LabScales {
		if s <= 0 {
			return newError(InvalidLabScales)
		}
	}
	if (c.ResizeWidth != nil && *c.ResizeWidth == 0) || (c.ResizeHeight != nil && *c.ResizeHeight == 0) {
		return newError(InvalidResizeDimensions)
	}
	if c.ResizeScale != nil && *c.ResizeScale <= 0 {
		return newError(InvalidResizeScale)
	}
	hostCores := runtime.NumCPU()
	if c.NumThreads < 1 || c.NumThreads > hostCores {
		return &Error{Kind: InvalidThreadCount, Value: hostCores}
	}
	return nil
}
