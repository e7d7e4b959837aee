package palettum

import "testing"

func TestPaletteLabMatchesColorCount(t *testing.T) {
	p := Palette{Colors: []Color{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}}
	labs := p.Lab()
	if len(labs) != len(p.Colors) {
		t.Fatalf("len(Lab()) = %d, want %d", len(labs), len(p.Colors))
	}
}

func TestPaletteStoreRoundTrip(t *testing.T) {
	p := Palette{ID: "p1", Source: "src", Kind: PaletteCustom, Colors: []Color{{R: 9, G: 8, B: 7}}}
	sp := p.toStore()
	back := fromStorePalette(sp)
	if back.ID != p.ID || back.Source != p.Source || back.Kind != p.Kind {
		t.Errorf("round trip metadata mismatch: got %+v, want %+v", back, p)
	}
	if len(back.Colors) != 1 || back.Colors[0] != p.Colors[0] {
		t.Errorf("round trip colors mismatch: got %v, want %v", back.Colors, p.Colors)
	}
}
