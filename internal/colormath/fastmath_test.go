package colormath

import "math"

import "testing"

func TestPow7Exact(t *testing.T) {
	for _, x := range []float32{0, 1, 2, 3.5, 10} {
		got := pow7(x)
		want := float32(math.Pow(float64(x), 7))
		if d := got - want; d < -1e-1 || d > 1e-1 {
			t.Errorf("pow7(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestFastAtanWithinTolerance(t *testing.T) {
	for _, x := range []float32{-1, -0.5, -0.1, 0, 0.1, 0.5, 1} {
		got := fastAtan(x)
		want := float32(math.Atan(float64(x)))
		if d := got - want; d < -0.01 || d > 0.01 {
			t.Errorf("fastAtan(%v) = %v, want ~%v", x, got, want)
		}
	}
}

func TestFastAtan2Quadrants(t *testing.T) {
	tests := []struct{ y, x, want float32 }{
		{0, 1, 0},
		{1, 0, math.Pi / 2},
		{0, -1, math.Pi},
		{-1, 0, -math.Pi / 2},
	}
	for _, tc := range tests {
		got := fastAtan2(tc.y, tc.x)
		if d := got - tc.want; d < -0.05 || d > 0.05 {
			t.Errorf("fastAtan2(%v,%v) = %v, want ~%v", tc.y, tc.x, got, tc.want)
		}
	}
}

func TestFastExpNearOne(t *testing.T) {
	got := fastExp(0)
	if got < 0.9 || got > 1.1 {
		t.Errorf("fastExp(0) = %v, want ~1", got)
	}
}

func TestFastSinCosNearZero(t *testing.T) {
	for _, x := range []float32{-0.3, -0.1, 0, 0.1, 0.3} {
		if d := fastSin(x) - float32(math.Sin(float64(x))); d < -0.02 || d > 0.02 {
			t.Errorf("fastSin(%v) diverges from math.Sin beyond tolerance", x)
		}
		if d := fastCos(x) - float32(math.Cos(float64(x))); d < -0.2 || d > 0.2 {
			t.Errorf("fastCos(%v) diverges from math.Cos beyond tolerance", x)
		}
	}
}
