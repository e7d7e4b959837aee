package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateID(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/Gruv-Box 16.json", "gruv-box-16"},
		{"SnakeCaseName.json", "snake-case-name"},
		{"plain.json", "plain"},
		{"Already-Kebab-Case.json", "already-kebab-case"},
	}
	for _, tc := range tests {
		if got := CreateID(tc.path); got != tc.want {
			t.Errorf("CreateID(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewLoadsEmbeddedDefaults(t *testing.T) {
	s := newTestStore(t)
	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("no embedded default palettes loaded")
	}
	for _, p := range all {
		if p.Kind != Default {
			t.Errorf("palette %q: Kind = %v, want Default", p.ID, p.Kind)
		}
		if len(p.Colors) == 0 {
			t.Errorf("palette %q has no colors", p.ID)
		}
	}
}

func TestSaveAndFindCustomPalette(t *testing.T) {
	s := newTestStore(t)
	p := Palette{ID: "my-test-palette", Source: "unit test", Colors: []Color{{R: 1, G: 2, B: 3}}}
	if err := s.Save(p, false); err != nil {
		t.Fatalf("Save: %v", err)
	}
	found, ok, err := s.Find("my-test-palette")
	if err != nil || !ok {
		t.Fatalf("Find after Save: ok=%v err=%v", ok, err)
	}
	if found.Kind != Custom {
		t.Errorf("Kind = %v, want Custom", found.Kind)
	}
	if len(found.Colors) != 1 || found.Colors[0] != (Color{R: 1, G: 2, B: 3}) {
		t.Errorf("Colors = %v, want [{1 2 3}]", found.Colors)
	}
}

func TestSaveWithoutForceRejectsExisting(t *testing.T) {
	s := newTestStore(t)
	p := Palette{ID: "dup", Colors: []Color{{R: 1}}}
	if err := s.Save(p, false); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := s.Save(p, false); err != ErrCustomPaletteExists {
		t.Errorf("second Save err = %v, want ErrCustomPaletteExists", err)
	}
	if err := s.Save(p, true); err != nil {
		t.Errorf("forced Save err = %v, want nil", err)
	}
}

func TestSaveCannotOverrideDefault(t *testing.T) {
	s := newTestStore(t)
	all, _ := s.All()
	if len(all) == 0 {
		t.Skip("no default palettes to test against")
	}
	defaultID := all[0].ID
	p := Palette{ID: defaultID, Colors: []Color{{R: 9}}}
	if err := s.Save(p, true); err != ErrCannotOverrideDefault {
		t.Errorf("Save over default id err = %v, want ErrCannotOverrideDefault", err)
	}
}

func TestDeleteDefaultAndUnsetRejected(t *testing.T) {
	s := newTestStore(t)
	all, _ := s.All()
	if len(all) == 0 {
		t.Skip("no default palettes to test against")
	}
	if err := s.Delete(all[0]); err != ErrDefaultPaletteDeletion {
		t.Errorf("Delete(default) err = %v, want ErrDefaultPaletteDeletion", err)
	}
	if err := s.Delete(Palette{Kind: Unset}); err != ErrUnsetPaletteDeletion {
		t.Errorf("Delete(unset) err = %v, want ErrUnsetPaletteDeletion", err)
	}
}

func TestDeleteCustomRemovesFile(t *testing.T) {
	s := newTestStore(t)
	p := Palette{ID: "to-delete", Colors: []Color{{R: 1}}}
	if err := s.Save(p, false); err != nil {
		t.Fatalf("Save: %v", err)
	}
	found, _, _ := s.Find("to-delete")
	if err := s.Delete(found); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Find("to-delete"); ok {
		t.Error("palette still found after Delete")
	}
}

func TestToFileForcesJSONExtension(t *testing.T) {
	dir := t.TempDir()
	p := Palette{ID: "x", Colors: []Color{{R: 1, G: 2, B: 3}}}
	path := filepath.Join(dir, "export.txt")
	if err := ToFile(p, path); err != nil {
		t.Fatalf("ToFile: %v", err)
	}
	wantPath := filepath.Join(dir, "export.json")
	if _, err := os.Stat(wantPath); err != nil {
		t.Errorf("expected file at %q, stat err = %v", wantPath, err)
	}
	if _, err := os.Stat(path); err == nil {
		t.Errorf("original non-.json path %q should not exist", path)
	}
}

func TestToFileInvalidPath(t *testing.T) {
	p := Palette{ID: "x", Colors: []Color{{R: 1}}}
	if err := ToFile(p, ""); err != ErrInvalidSavePath {
		t.Errorf("ToFile(\"\") err = %v, want ErrInvalidSavePath", err)
	}
}
