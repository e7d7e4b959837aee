// Package quantize implements Xiaolin Wu's color quantizer over a Lab-space
// 3D histogram: cumulative moments, greedy variance-maximizing cube
// splitting, and centroid extraction.
//
// Grounded on original_source/core/src/palette/extraction.rs (the
// canonical algorithm: HIST_DIM=32, MOMENT_TABLE_DIM=33, the B > A > L
// axis tie-break, and the area/area2 cumulative-moment construction).
package quantize

import (
	"errors"

	"github.com/palettum/palettum/internal/colormath"
)

// ErrEmptyInput is returned when ExtractColors is called with no pixels.
var ErrEmptyInput = errors.New("quantize: empty pixel input")

// ErrZeroK is returned when ExtractColors is asked for zero colors.
var ErrZeroK = errors.New("quantize: k must be > 0")

const (
	histDim        = 32
	momentTableDim = histDim + 1 // 33: indices 0..32, 0 is the zero boundary.
	maxColors      = 255
)

type moments struct {
	w    []float64
	l    []float64
	a    []float64
	b    []float64
	sq   []float64 // sum of L^2+a^2+b^2
	size int
}

func newMoments() *moments {
	n := momentTableDim * momentTableDim * momentTableDim
	return &moments{
		w: make([]float64, n), l: make([]float64, n), a: make([]float64, n),
		b: make([]float64, n), sq: make([]float64, n), size: momentTableDim,
	}
}

func (m *moments) idx(l, a, b int) int {
	d := m.size
	return l*d*d + a*d + b
}

func mapValueToHistBinIdx(v, min, max float32) int {
	t := (v - min) / (max - min)
	bin := int(t*31 + 0.5)
	bin++
	if bin < 1 {
		bin = 1
	}
	if bin > histDim {
		bin = histDim
	}
	return bin
}

func buildRawHistogram(pixels []colormath.Lab) *moments {
	m := newMoments()
	for _, p := range pixels {
		lb := mapValueToHistBinIdx(p.L, 0, 100)
		ab := mapValueToHistBinIdx(p.A, -128, 127)
		bb := mapValueToHistBinIdx(p.B, -128, 127)
		i := m.idx(lb, ab, bb)
		m.w[i]++
		m.l[i] += float64(p.L)
		m.a[i] += float64(p.A)
		m.b[i] += float64(p.B)
		m.sq[i] += float64(p.L)*float64(p.L) + float64(p.A)*float64(p.A) + float64(p.B)*float64(p.B)
	}
	return m
}

// computeCumulativeMoments transforms each raw moment table into an
// inclusive 3D prefix-sum table in place, using the classic running-sum
// construction (Wu 1991): a line sum along b, an area sum over a and b
// for the current L plane, added to the previous plane's totals.
func computeCumulativeMoments(m *moments) {
	cumulate := func(tab []float64) {
		area := make([]float64, momentTableDim)
		for l := 1; l < momentTableDim; l++ {
			for i := range area {
				area[i] = 0
			}
			for a := 1; a < momentTableDim; a++ {
				line := 0.0
				for b := 1; b < momentTableDim; b++ {
					line += tab[m.idx(l, a, b)]
					area[b] += line
					tab[m.idx(l, a, b)] = tab[m.idx(l-1, a, b)] + area[b]
				}
			}
		}
	}
	cumulate(m.w)
	cumulate(m.l)
	cumulate(m.a)
	cumulate(m.b)
	cumulate(m.sq)
}

type box struct {
	l0, l1, a0, a1, b0, b1 int
}

func sumInBox(tab []float64, idx func(l, a, b int) int, bx box) float64 {
	l0, l1, a0, a1, b0, b1 := bx.l0, bx.l1, bx.a0, bx.a1, bx.b0, bx.b1
	return tab[idx(l1, a1, b1)] - tab[idx(l1, a1, b0)] - tab[idx(l1, a0, b1)] + tab[idx(l1, a0, b0)] -
		tab[idx(l0, a1, b1)] + tab[idx(l0, a1, b0)] + tab[idx(l0, a0, b1)] - tab[idx(l0, a0, b0)]
}

func (m *moments) boxTotals(bx box) (w, l, a, b float64) {
	idx := m.idx
	return sumInBox(m.w, idx, bx), sumInBox(m.l, idx, bx), sumInBox(m.a, idx, bx), sumInBox(m.b, idx, bx)
}

func scoreHalf(w, l, a, b float64) float64 {
	if w <= 0 {
		return 0
	}
	return (l*l + a*a + b*b) / w
}

type splitPlan struct {
	axis  byte // 'l', 'a', or 'b'
	cut   int
	score float64
}

// bestSplit finds the axis and cut position maximizing the sum of both
// halves' scores, with ties broken in favor of later-evaluated axes
// (B > A > L), matching the typical Wu implementation.
func bestSplit(m *moments, bx box) (splitPlan, bool) {
	var best splitPlan
	found := false

	tryAxis := func(axis byte, lo, hi int, makeHalves func(cut int) (box, box)) {
		for cut := lo + 1; cut < hi; cut++ {
			h1, h2 := makeHalves(cut)
			w1, l1, a1, b1 := m.boxTotals(h1)
			w2, l2, a2, b2 := m.boxTotals(h2)
			if w1 <= 0 || w2 <= 0 {
				continue
			}
			s := scoreHalf(w1, l1, a1, b1) + scoreHalf(w2, l2, a2, b2)
			if !found || s >= best.score {
				best = splitPlan{axis: axis, cut: cut, score: s}
				found = true
			}
		}
	}

	tryAxis('l', bx.l0, bx.l1, func(cut int) (box, box) {
		h1, h2 := bx, bx
		h1.l1, h2.l0 = cut, cut
		return h1, h2
	})
	tryAxis('a', bx.a0, bx.a1, func(cut int) (box, box) {
		h1, h2 := bx, bx
		h1.a1, h2.a0 = cut, cut
		return h1, h2
	})
	tryAxis('b', bx.b0, bx.b1, func(cut int) (box, box) {
		h1, h2 := bx, bx
		h1.b1, h2.b0 = cut, cut
		return h1, h2
	})

	return best, found
}

func splitBox(bx box, plan splitPlan) (box, box) {
	h1, h2 := bx, bx
	switch plan.axis {
	case 'l':
		h1.l1, h2.l0 = plan.cut, plan.cut
	case 'a':
		h1.a1, h2.a0 = plan.cut, plan.cut
	default:
		h1.b1, h2.b0 = plan.cut, plan.cut
	}
	return h1, h2
}

// ExtractColors runs the Wu quantizer over a slice of Lab pixels,
// returning at most min(k, 255) sRGB colors. It returns fewer than k when
// further splits would only produce zero-variance cubes.
func ExtractColors(pixels []colormath.Lab, k int) ([]colormath.RGB, error) {
	if len(pixels) == 0 {
		return nil, ErrEmptyInput
	}
	if k <= 0 {
		return nil, ErrZeroK
	}
	if k > maxColors {
		k = maxColors
	}

	m := buildRawHistogram(pixels)
	computeCumulativeMoments(m)

	cubes := []box{{0, histDim, 0, histDim, 0, histDim}}

	for len(cubes) < k {
		bestIdx := -1
		bestReduction := 0.0
		var bestPlan splitPlan

		for i, bx := range cubes {
			plan, ok := bestSplit(m, bx)
			if !ok {
				continue
			}
			w, l, a, b := m.boxTotals(bx)
			reduction := plan.score - scoreHalf(w, l, a, b)
			if bestIdx == -1 || reduction > bestReduction {
				bestIdx, bestReduction, bestPlan = i, reduction, plan
			}
		}

		if bestIdx == -1 || bestReduction <= 0 {
			break
		}

		h1, h2 := splitBox(cubes[bestIdx], bestPlan)
		cubes[bestIdx] = h1
		cubes = append(cubes, h2)
	}

	colors := make([]colormath.RGB, len(cubes))
	for i, bx := range cubes {
		w, l, a, b := m.boxTotals(bx)
		if w <= 0 {
			colors[i] = colormath.RGB{}
			continue
		}
		lab := colormath.Lab{L: float32(l / w), A: float32(a / w), B: float32(b / w)}
		r, g, bch := colormath.LabToSRGB(lab)
		colors[i] = colormath.RGB{R: r, G: g, B: bch}
	}
	return colors, nil
}
