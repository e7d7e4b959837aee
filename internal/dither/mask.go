package dither

import "math"

// MaskSize is the edge length of the tiled blue-noise threshold mask.
const MaskSize = 64

const n = MaskSize * MaskSize

// blueNoiseMask is a fixed 64x64 byte matrix of void-and-cluster dither
// thresholds, tiled across the image via (x mod 64, y mod 64). It is
// computed once at package init via Ulichney's energy-minimizing
// construction (see buildVoidAndClusterMask) and never mutated afterward.
var blueNoiseMask [n]uint8

func init() {
	blueNoiseMask = buildVoidAndClusterMask()
}

// Mask returns the threshold in [0,255] for tile-local coordinates
// (x mod 64, y mod 64).
func Mask(x, y int) uint8 {
	xi := ((x % MaskSize) + MaskSize) % MaskSize
	yi := ((y % MaskSize) + MaskSize) % MaskSize
	return blueNoiseMask[yi*MaskSize+xi]
}

// Gaussian filter used as the void-and-cluster energy function, matching
// Ulichney's original choice of kernel (sigma ~1.5 cells, truncated at a
// radius where the tail is negligible).
const (
	kernelRadius = 3
	sigma        = 1.5
)

var gaussianKernel [2*kernelRadius + 1][2*kernelRadius + 1]float64

func init() {
	for dy := -kernelRadius; dy <= kernelRadius; dy++ {
		for dx := -kernelRadius; dx <= kernelRadius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			gaussianKernel[dy+kernelRadius][dx+kernelRadius] = math.Exp(-d2 / (2 * sigma * sigma))
		}
	}
}

// energyGrid tracks, for every toroidal cell, the Gaussian-filtered
// contribution of every "one" currently placed on the grid -- the quantity
// void-and-cluster hill-climbs on: a one sitting where energy is highest is
// part of the tightest cluster, a zero sitting where energy is lowest is
// the center of the largest void.
type energyGrid struct {
	e [n]float64
}

func (g *energyGrid) add(pos int, sign float64) {
	x, y := pos%MaskSize, pos/MaskSize
	for dy := -kernelRadius; dy <= kernelRadius; dy++ {
		yy := wrap(y+dy, MaskSize)
		row := gaussianKernel[dy+kernelRadius]
		for dx := -kernelRadius; dx <= kernelRadius; dx++ {
			xx := wrap(x+dx, MaskSize)
			g.e[yy*MaskSize+xx] += sign * row[dx+kernelRadius]
		}
	}
}

func tightestCluster(ones []bool, g *energyGrid) int {
	best := -1
	var bestE float64
	for i, isOne := range ones {
		if !isOne {
			continue
		}
		if best == -1 || g.e[i] > bestE {
			best, bestE = i, g.e[i]
		}
	}
	return best
}

func largestVoid(ones []bool, g *energyGrid) int {
	best := -1
	var bestE float64
	for i, isOne := range ones {
		if isOne {
			continue
		}
		if best == -1 || g.e[i] < bestE {
			best, bestE = i, g.e[i]
		}
	}
	return best
}

// buildVoidAndClusterMask implements Ulichney's void-and-cluster method:
// seed a sparse initial pattern, relax it into a well-distributed
// prototype, then rank every cell by the order void-and-cluster would
// add or remove it in. Phases 2 and 3 of the original algorithm (which
// past the halfway point switches from "fill the largest void" to
// "cluster-rank the complement pattern") are merged here into a single
// largest-void pass for the upper half -- a common simplification, since
// both phases are driven by the same Gaussian energy field and differ
// only in which side of 50% fill they run on.
func buildVoidAndClusterMask() [n]uint8 {
	ones := make([]bool, n)
	g := &energyGrid{}

	n0 := n / 10
	seedInitialPattern(ones, g, n0)
	refinePrototype(ones, g, n0)

	var mask [n]uint8

	// Phase 1: rank the prototype's ones by repeatedly removing the
	// tightest cluster, assigning descending ranks down to 0.
	protoOnes := append([]bool(nil), ones...)
	protoEnergy := rebuildEnergy(protoOnes)
	rank := n0 - 1
	for remaining := n0; remaining > 0; remaining-- {
		pos := tightestCluster(protoOnes, protoEnergy)
		mask[pos] = rankToByte(rank)
		protoOnes[pos] = false
		protoEnergy.add(pos, -1)
		rank--
	}

	// Phases 2+3: from the same prototype, repeatedly fill the largest
	// void with ascending ranks until every cell is placed.
	workOnes := append([]bool(nil), ones...)
	workEnergy := rebuildEnergy(workOnes)
	rank = n0
	for filled := n0; filled < n; filled++ {
		pos := largestVoid(workOnes, workEnergy)
		mask[pos] = rankToByte(rank)
		workOnes[pos] = true
		workEnergy.add(pos, 1)
		rank++
	}

	return mask
}

func rebuildEnergy(ones []bool) *energyGrid {
	g := &energyGrid{}
	for i, v := range ones {
		if v {
			g.add(i, 1)
		}
	}
	return g
}

func rankToByte(rank int) uint8 {
	return uint8(rank * 255 / (n - 1))
}

// seedInitialPattern places n0 ones at a fixed stride coprime with n, so
// positions are distinct and spread across the grid without depending on
// an external random source.
func seedInitialPattern(ones []bool, g *energyGrid, n0 int) {
	const stride = 1693 // odd, so coprime with n = 64*64 = 2^12
	pos := 0
	for i := 0; i < n0; i++ {
		pos = (pos + stride) % n
		ones[pos] = true
		g.add(pos, 1)
	}
}

// refinePrototype relaxes the seeded pattern toward a locally balanced
// one by repeatedly relocating its tightest cluster to its current
// largest void, the same move void-and-cluster's ranking phases make,
// run here just to condition the starting point.
func refinePrototype(ones []bool, g *energyGrid, n0 int) {
	for i := 0; i < 4*n0; i++ {
		cluster := tightestCluster(ones, g)
		ones[cluster] = false
		g.add(cluster, -1)

		void := largestVoid(ones, g)
		ones[void] = true
		g.add(void, 1)

		if cluster == void {
			break
		}
	}
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
