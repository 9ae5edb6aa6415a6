package palette

import (
	"fmt"

	"github.com/thenoetrevino/labelflair/internal/config"
)

// Resolve returns exactly n colors for spec.
// A fixed spec repeats its color; a palette spec cycles through the shades
// so label i always gets shades[i % len(shades)].
func (r *Registry) Resolve(spec config.ColorSpec, n int) ([]string, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}

	switch s := spec.(type) {
	case config.Fixed:
		colors := make([]string, n)
		for i := range colors {
			colors[i] = s.Hex
		}
		return colors, nil

	case config.Palette:
		shades, err := r.ShadesFor(s.Name)
		if err != nil {
			return nil, err
		}
		if len(shades) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyPalette, s.Name)
		}

		colors := make([]string, n)
		for i := range colors {
			colors[i] = shades[i%len(shades)]
		}
		return colors, nil

	default:
		return nil, fmt.Errorf("%w: unsupported color spec %T", config.ErrInvalidColorSpec, spec)
	}
}
