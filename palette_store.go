package palettum

import (
	"errors"

	"github.com/palettum/palettum/internal/store"
)

// Store merges the embedded default palette set with a user-writable
// custom directory.
type Store struct {
	s *store.Store
}

// NewStore returns a Store rooted at customDir (created on demand). Pass
// "" to use the platform default (XDG data root + "palettum/palettes").
func NewStore(customDir string) (*Store, error) {
	s, err := store.New(customDir)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &Store{s: s}, nil
}

// AllPalettes returns defaults then customs, in filesystem-enumeration
// order within each tier.
func (st *Store) AllPalettes() ([]Palette, error) {
	all, err := st.s.All()
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	out := make([]Palette, len(all))
	for i, p := range all {
		out[i] = fromStorePalette(p)
	}
	return out, nil
}

// FindPalette performs a linear scan of AllPalettes for id.
func (st *Store) FindPalette(id string) (Palette, bool, error) {
	p, ok, err := st.s.Find(id)
	if err != nil {
		return Palette{}, false, wrapStoreErr(err)
	}
	return fromStorePalette(p), ok, nil
}

// SaveCustomPalette writes <customDir>/<p.ID>.json.
func (st *Store) SaveCustomPalette(p Palette, force bool) error {
	if err := st.s.Save(p.toStore(), force); err != nil {
		return wrapStoreErr2(err, p.ID)
	}
	return nil
}

// DeleteCustomPalette removes a custom palette's file.
func (st *Store) DeleteCustomPalette(p Palette) error {
	if err := st.s.Delete(p.toStore()); err != nil {
		return wrapStoreErr2(err, p.ID)
	}
	return nil
}

// PaletteToFile serializes p to path, forcing a ".json" extension.
func PaletteToFile(p Palette, path string) error {
	if err := store.ToFile(p.toStore(), path); err != nil {
		return wrapStoreErr2(err, path)
	}
	return nil
}

// CreatePaletteID derives a palette id from a file path the same way the
// store does internally, for callers that need it standalone (e.g. the
// CLI preflighting a save).
func CreatePaletteID(path string) string {
	return store.CreateID(path)
}

func wrapStoreErr(err error) error {
	return wrapStoreErr2(err, "")
}

func wrapStoreErr2(err error, field string) error {
	switch {
	case errors.Is(err, store.ErrCannotOverrideDefault):
		return &Error{Kind: CannotOverrideDefault, Field: field}
	case errors.Is(err, store.ErrCustomPaletteExists):
		return &Error{Kind: CustomPaletteExists, Field: field}
	case errors.Is(err, store.ErrDefaultPaletteDeletion):
		return &Error{Kind: DefaultPaletteDeletion, Field: field}
	case errors.Is(err, store.ErrUnsetPaletteDeletion):
		return &Error{Kind: UnsetPaletteDeletion, Field: field}
	case errors.Is(err, store.ErrCannotDetermineCustomDir):
		return newError(CannotDetermineCustomDir)
	case errors.Is(err, store.ErrInvalidSavePath):
		return &Error{Kind: InvalidSavePath, Field: field}
	case errors.Is(err, store.ErrMissingColors):
		return &Error{Kind: MissingField, Field: "colors"}
	default:
		return &Error{Kind: IoError, Inner: err}
	}
}
