// Package lut implements the quantized 3D RGB->output-RGB acceleration
// table: built lazily once per (Config, palette) pair, admitted only when
// cheaper than direct compute + cache, and indexed by quantized RGB at
// runtime.
//
// Grounded on original_source/packages/core/src/lut.rs (admission rule,
// centered-sample rounding) and processing.rs's generate_lookup_table;
// the parallel build fan-out is grounded on
// sctaw-aaaaxy/internal/palette/lut.go's per-row goroutine pattern.
package lut

import (
	"sync"

	"github.com/palettum/palettum/internal/colormath"
)

// Table is a dense bins^3 sRGB lookup table. The zero value (Entries ==
// nil) represents "not built" / "not admitted".
type Table struct {
	Q       uint8
	Bins    int
	Entries []colormath.RGB
}

// Admit reports whether the LUT is worth building for the given
// quantization level and image size: bins^3 <= imagePixels/4.
func Admit(q uint8, imagePixels int) bool {
	if q == 0 {
		return false
	}
	bins := 256 >> q
	size := bins * bins * bins
	return size <= imagePixels/4
}

// Build materializes the LUT by evaluating compute at the centered sample
// of every quantization cell. compute must be safe for concurrent use; the
// build fans out across numThreads goroutines when numThreads > 1.
func Build(q uint8, numThreads int, compute func(r, g, b uint8) colormath.RGB) Table {
	bins := 256 >> q
	size := bins * bins * bins
	entries := make([]colormath.RGB, size)

	centered := func(bin int) uint8 {
		v := (bin << q) + (1 << (q - 1))
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}

	fill := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			bBin := i % bins
			gBin := (i / bins) % bins
			rBin := i / (bins * bins)
			entries[i] = compute(centered(rBin), centered(gBin), centered(bBin))
		}
	}

	if numThreads <= 1 || size < numThreads {
		fill(0, size)
	} else {
		chunk := (size + numThreads - 1) / numThreads
		var wg sync.WaitGroup
		for lo := 0; lo < size; lo += chunk {
			hi := lo + chunk
			if hi > size {
				hi = size
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				fill(lo, hi)
			}(lo, hi)
		}
		wg.Wait()
	}

	return Table{Q: q, Bins: bins, Entries: entries}
}

// Index computes the flat LUT index for an 8-bit RGB triple.
func (t Table) Index(r, g, b uint8) int {
	bins := t.Bins
	return int(r>>t.Q)*bins*bins + int(g>>t.Q)*bins + int(b>>t.Q)
}

// Built reports whether the table has entries (was admitted and built).
func (t Table) Built() bool {
	return len(t.Entries) > 0
}

// Lookup returns the table entry for the given index, and whether the
// index was in bounds.
func (t Table) Lookup(idx int) (colormath.RGB, bool) {
	if idx < 0 || idx >= len(t.Entries) {
		return colormath.RGB{}, false
	}
	return t.Entries[idx], true
}
