package palettum

import (
	"runtime"
	"testing"
)

func validPalette() Palette {
	return Palette{ID: "test", Colors: []Color{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}}}
}

func TestDefaultConfigIsValidOnceGivenAPalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = validPalette()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig with a palette failed validation: %v", err)
	}
}

func TestValidateEmptyPalette(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty palette")
	} else if e, ok := err.(*Error); !ok || e.Kind != EmptyPalette {
		t.Errorf("err = %v, want Kind=EmptyPalette", err)
	}
}

func TestValidateInvalidQuantLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = validPalette()
	cfg.QuantLevel = 6
	err := cfg.Validate()
	e, ok := err.(*Error)
	if !ok || e.Kind != InvalidQuantLevel {
		t.Errorf("err = %v, want Kind=InvalidQuantLevel", err)
	}
}

func TestValidateInvalidSmoothingStrength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = validPalette()
	cfg.SmoothingStrength = 1.5
	err := cfg.Validate()
	e, ok := err.(*Error)
	if !ok || e.Kind != InvalidSmoothingStrength {
		t.Errorf("err = %v, want Kind=InvalidSmoothingStrength", err)
	}
}

func TestValidateInvalidLabScales(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = validPalette()
	cfg.LabScales = [3]float32{1, 0, 1}
	err := cfg.Validate()
	e, ok := err.(*Error)
	if !ok || e.Kind != InvalidLabScales {
		t.Errorf("err = %v, want Kind=InvalidLabScales", err)
	}
}

func TestValidateThreadCountBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = validPalette()
	cfg.NumThreads = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for NumThreads=0")
	}
	cfg.NumThreads = runtime.NumCPU() + 100
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for NumThreads beyond host cores")
	}
	cfg.NumThreads = runtime.NumCPU()
	if err := cfg.Validate(); err != nil {
		t.Errorf("NumThreads = host cores should validate, got %v", err)
	}
}

func TestValidateResizeDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = validPalette()
	zero := uint32(0)
	cfg.ResizeWidth = &zero
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero resize width")
	}
}
