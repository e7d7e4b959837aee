// Package store implements the palette store: merging an embedded default
// palette set with a user-writable custom set, id-based lookup, and JSON
// persistence.
//
// Grounded on original_source/core/src/palette/io.rs (read in full): the
// create_id derivation, save/delete override rules, and the forced
// ".json" extension on palette_to_file. Uses github.com/adrg/xdg for the
// default custom-palette directory (grounded on sctaw-aaaaxy's go.mod,
// the only pack repo depending on a user-data-dir library).
package store

import (
	"embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
)

//go:embed defaults/*.json
var defaultsFS embed.FS

// Kind distinguishes where a palette came from.
type Kind int

const (
	Default Kind = iota
	Custom
	Unset
)

// Color is an 8-bit sRGB triple with no alpha.
type Color struct {
	R, G, B uint8
}

// Palette is the store's on-disk/in-memory representation.
type Palette struct {
	ID     string
	Source string
	Kind   Kind
	Colors []Color
}

// Sentinel errors for store mutation failures. Root package translates
// these into its typed Error via errors.Is.
var (
	ErrCannotOverrideDefault  = errors.New("store: cannot override a default palette")
	ErrCustomPaletteExists    = errors.New("store: custom palette already exists")
	ErrDefaultPaletteDeletion = errors.New("store: cannot delete a default palette")
	ErrUnsetPaletteDeletion   = errors.New("store: cannot delete an unset palette")
	ErrCannotDetermineCustomDir = errors.New("store: cannot determine custom palette directory")
	ErrInvalidSavePath        = errors.New("store: invalid save path")
	ErrMissingColors          = errors.New("store: palette JSON missing non-empty colors")
)

// DefaultCustomDir returns the platform user-data-root path palettum uses
// for user-writable palettes when the caller does not override it.
func DefaultCustomDir() string {
	return filepath.Join(xdg.DataHome, "palettum", "palettes")
}

// Store merges the embedded default set with a user-writable custom
// directory.
type Store struct {
	customDir string
	defaults  []Palette
}

// New returns a Store rooted at customDir (created on demand). Pass "" to
// use DefaultCustomDir().
func New(customDir string) (*Store, error) {
	if customDir == "" {
		if xdg.DataHome == "" {
			return nil, ErrCannotDetermineCustomDir
		}
		customDir = DefaultCustomDir()
	}
	defaults, err := loadEmbeddedDefaults()
	if err != nil {
		return nil, err
	}
	return &Store{customDir: customDir, defaults: defaults}, nil
}

func loadEmbeddedDefaults() ([]Palette, error) {
	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	palettes := make([]Palette, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := defaultsFS.ReadFile(filepath.Join("defaults", e.Name()))
		if err != nil {
			return nil, err
		}
		p, err := decodePalette(data)
		if err != nil {
			return nil, err
		}
		p.ID = CreateID(e.Name())
		p.Kind = Default
		palettes = append(palettes, p)
	}
	return palettes, nil
}

type jsonPalette struct {
	Source string      `json:"source,omitempty"`
	Colors []jsonColor `json:"colors"`
}

type jsonColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func decodePalette(data []byte) (Palette, error) {
	var jp jsonPalette
	if err := json.Unmarshal(data, &jp); err != nil {
		return Palette{}, err
	}
	if len(jp.Colors) == 0 {
		return Palette{}, ErrMissingColors
	}
	colors := make([]Color, len(jp.Colors))
	for i, c := range jp.Colors {
		colors[i] = Color{R: c.R, G: c.G, B: c.B}
	}
	return Palette{Source: jp.Source, Colors: colors}, nil
}

func encodePalette(p Palette) []byte {
	jp := jsonPalette{Source: p.Source, Colors: make([]jsonColor, len(p.Colors))}
	for i, c := range p.Colors {
		jp.Colors[i] = jsonColor{R: c.R, G: c.G, B: c.B}
	}
	data, _ := json.MarshalIndent(jp, "", "  ")
	return data
}

// listCustomPalettes enumerates the custom directory in filesystem order.
func (s *Store) listCustomPalettes() ([]Palette, error) {
	entries, err := os.ReadDir(s.customDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var palettes []Palette
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.customDir, e.Name()))
		if err != nil {
			return nil, err
		}
		p, err := decodePalette(data)
		if err != nil {
			return nil, err
		}
		p.ID = CreateID(e.Name())
		p.Kind = Custom
		palettes = append(palettes, p)
	}
	return palettes, nil
}

// All returns defaults then customs, in filesystem-enumeration order
// within each tier.
func (s *Store) All() ([]Palette, error) {
	customs, err := s.listCustomPalettes()
	if err != nil {
		return nil, err
	}
	all := make([]Palette, 0, len(s.defaults)+len(customs))
	all = append(all, s.defaults...)
	all = append(all, customs...)
	return all, nil
}

// Find performs a linear scan of All() for the given id.
func (s *Store) Find(id string) (Palette, bool, error) {
	all, err := s.All()
	if err != nil {
		return Palette{}, false, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, true, nil
		}
	}
	return Palette{}, false, nil
}

func (s *Store) isDefaultID(id string) bool {
	for _, p := range s.defaults {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) customPath(id string) string {
	return filepath.Join(s.customDir, id+".json")
}

// Save writes <customDir>/<p.ID>.json. Fails with
// ErrCannotOverrideDefault if id collides with a default palette; fails
// with ErrCustomPaletteExists if a custom entry of that id exists and
// force is false.
func (s *Store) Save(p Palette, force bool) error {
	if s.isDefaultID(p.ID) {
		return ErrCannotOverrideDefault
	}
	path := s.customPath(p.ID)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return ErrCustomPaletteExists
		}
	}
	if err := os.MkdirAll(s.customDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, encodePalette(p), 0o644)
}

// Delete removes a custom palette's file. Fails with
// ErrDefaultPaletteDeletion for defaults and ErrUnsetPaletteDeletion for
// the Unset kind.
func (s *Store) Delete(p Palette) error {
	switch p.Kind {
	case Default:
		return ErrDefaultPaletteDeletion
	case Unset:
		return ErrUnsetPaletteDeletion
	}
	return os.Remove(s.customPath(p.ID))
}

// ToFile serializes p to path, forcing a ".json" extension.
func ToFile(p Palette, path string) error {
	if ext := filepath.Ext(path); ext != ".json" {
		path = strings.TrimSuffix(path, ext) + ".json"
	}
	if path == ".json" || path == "" {
		return ErrInvalidSavePath
	}
	return os.WriteFile(path, encodePalette(p), 0o644)
}
