package palettum

import "fmt"

// Kind identifies the category of a palettum Error, mirroring the
// original's tagged-union error enum (see SPEC_FULL.md section 2.2). Go has
// no enum+derive equivalent, so this follows the idiomatic stdlib analogue
// for exactly this shape (os.PathError, strconv.NumError): one exported
// struct with a Kind and typed payload fields.
type Kind int

const (
	EmptyPalette Kind = iota
	InvalidQuantLevel
	InvalidSmoothingStrength
	InvalidLabScales
	InvalidResizeDimensions
	InvalidResizeScale
	InvalidThreadCount
	LutIndexOutOfBounds
	InvalidGifFile
	MissingField
	CannotOverrideDefault
	CustomPaletteExists
	CannotDetermineCustomDir
	InvalidSavePath
	DefaultPaletteDeletion
	UnsetPaletteDeletion
	InvalidPaletteFromMedia
	IoError
	JsonError
)

func (k Kind) String() string {
	switch k {
	case EmptyPalette:
		return "EmptyPalette"
	case InvalidQuantLevel:
		return "InvalidQuantLevel"
	case InvalidSmoothingStrength:
		return "InvalidSmoothingStrength"
	case InvalidLabScales:
		return "InvalidLabScales"
	case InvalidResizeDimensions:
		return "InvalidResizeDimensions"
	case InvalidResizeScale:
		return "InvalidResizeScale"
	case InvalidThreadCount:
		return "InvalidThreadCount"
	case LutIndexOutOfBounds:
		return "LutIndexOutOfBounds"
	case InvalidGifFile:
		return "InvalidGifFile"
	case MissingField:
		return "MissingField"
	case CannotOverrideDefault:
		return "CannotOverrideDefault"
	case CustomPaletteExists:
		return "CustomPaletteExists"
	case CannotDetermineCustomDir:
		return "CannotDetermineCustomDir"
	case InvalidSavePath:
		return "InvalidSavePath"
	case DefaultPaletteDeletion:
		return "DefaultPaletteDeletion"
	case UnsetPaletteDeletion:
		return "UnsetPaletteDeletion"
	case InvalidPaletteFromMedia:
		return "InvalidPaletteFromMedia"
	case IoError:
		return "Io"
	case JsonError:
		return "Json"
	default:
		return "Unknown"
	}
}

// Error is palettum's single error type. Field meaning depends on Kind;
// unused fields are left at their zero value.
type Error struct {
	Kind    Kind
	Value   int     // InvalidQuantLevel.value, InvalidThreadCount.host_cores, LutIndexOutOfBounds.index
	Max     int     // InvalidQuantLevel.max, LutIndexOutOfBounds.size
	Float   float32 // InvalidSmoothingStrength(f)
	Field   string  // MissingField, ID/path-bearing kinds (reused for id/path)
	Inner   error   // Io/Json wrapped errors
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidQuantLevel:
		return fmt.Sprintf("palettum: invalid quant level %d (max %d)", e.Value, e.Max)
	case InvalidSmoothingStrength:
		return fmt.Sprintf("palettum: invalid smoothing strength %v", e.Float)
	case InvalidThreadCount:
		return fmt.Sprintf("palettum: invalid thread count (host cores %d)", e.Value)
	case LutIndexOutOfBounds:
		return fmt.Sprintf("palettum: lut index %d out of bounds (size %d)", e.Value, e.Max)
	case MissingField:
		return fmt.Sprintf("palettum: palette JSON missing field %q", e.Field)
	case CannotOverrideDefault:
		return fmt.Sprintf("palettum: cannot override default palette %q", e.Field)
	case CustomPaletteExists:
		return fmt.Sprintf("palettum: custom palette already exists at %q", e.Field)
	case DefaultPaletteDeletion:
		return fmt.Sprintf("palettum: cannot delete default palette %q", e.Field)
	case UnsetPaletteDeletion:
		return fmt.Sprintf("palettum: cannot delete unset palette %q", e.Field)
	case IoError, JsonError:
		return fmt.Sprintf("palettum: %s: %v", e.Kind, e.Inner)
	default:
		return fmt.Sprintf("palettum: %s", e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Inner }

func newError(k Kind) *Error { return &Error{Kind: k} }
