package lut

import (
	"sync"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/palettum/palettum/internal/colormath"
)

// CacheKeyInput captures everything that determines a built Table's
// contents, so repeated Palettify calls against the same (Config, palette)
// pair can reuse one Table instead of rebuilding it from scratch.
type CacheKeyInput struct {
	QuantLevel    uint8
	Smoothed      bool
	Formula       int
	WeightFormula int
	Strength      float32
	LabScales     [3]float32
	Palette       []colormath.RGB
}

func (k CacheKeyInput) hash() uint64 {
	h, err := hashstructure.Hash(k, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return h
}

var buildCache sync.Map // uint64 -> Table

// GetOrBuild returns the Table memoized under key's hash, building it via
// Build and storing it first if absent. A hash collision between two
// distinct keys would return a stale Table; hashstructure's 64-bit FNV
// space makes this negligible for the process lifetime of a CLI or
// service using a bounded set of configs/palettes.
func GetOrBuild(key CacheKeyInput, numThreads int, compute func(r, g, b uint8) colormath.RGB) Table {
	h := key.hash()
	if t, ok := buildCache.Load(h); ok {
		return t.(Table)
	}
	t := Build(key.QuantLevel, numThreads, compute)
	buildCache.Store(h, t)
	return t
}
