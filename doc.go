// Package palettum remaps raster media to a user-supplied color palette.
//
// Two mapping regimes are supported:
//   - Palettized: each pixel is replaced by its nearest palette entry
//     under a chosen perceptual color-difference metric, optionally
//     dithered (Floyd-Steinberg or blue-noise).
//   - Smoothed: each pixel becomes a weighted average of all palette
//     entries, with weights falling off with perceptual distance,
//     producing a continuous remapping.
//
// The package operates purely on decoded pixel grids and a validated
// Config; it does not decode or encode image files, and it has no
// command-line, TUI, or GPU surface of its own.
//
// Basic usage:
//
//	cfg := palettum.DefaultConfig()
//	cfg.Palette = myPalette
//	err := palettum.Palettify(pix, width, height, cfg)
package palettum
