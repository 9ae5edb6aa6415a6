package palette

import (
	"errors"
	"fmt"
)

// Palette errors
var (
	ErrUnknownPalette = errors.New("unknown palette")

	// ErrEmptyPalette means a registered palette has no shades; the built-in table never does
	ErrEmptyPalette = errors.New("palette has no shades")

	ErrInvalidCount = errors.New("color count cannot be negative")
)

// UnknownPaletteError carries the palette name that failed to resolve
type UnknownPaletteError struct {
	Name string
}

func (e *UnknownPaletteError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownPalette, e.Name)
}

// Is lets errors.Is match ErrUnknownPalette
func (e *UnknownPaletteError) Is(target error) bool {
	return target == ErrUnknownPalette
}
