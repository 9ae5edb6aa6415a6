package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsHexColor reports whether s is a #RRGGBB color
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// ColorSpec describes how a group's labels are colored.
// It is either Fixed or Palette; no other implementations exist.
type ColorSpec interface {
	isColorSpec()
	String() string
}

// Fixed applies the same hex color to every label of a group
type Fixed struct {
	Hex string
}

// Palette cycles through the shades of a named palette
type Palette struct {
	Name string
}

func (Fixed) isColorSpec()   {}
func (Palette) isColorSpec() {}

func (f Fixed) String() string   { return "fixed " + f.Hex }
func (p Palette) String() string { return "palette " + p.Name }

// colorsField decodes the inline table `colors = { ... }`
type colorsField struct {
	spec ColorSpec
}

// UnmarshalTOML implements toml.Unmarshaler
func (c *colorsField) UnmarshalTOML(data any) error {
	table, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: expected a table like { palette = \"red\" } or { fixed = \"#ff0000\" }, got %T", ErrInvalidColorSpec, data)
	}

	spec, err := colorSpecFromTable(table)
	if err != nil {
		return err
	}
	c.spec = spec
	return nil
}

func colorSpecFromTable(table map[string]any) (ColorSpec, error) {
	var found []string
	for key := range table {
		switch key {
		case "fixed", "palette", "tailwind":
			found = append(found, key)
		default:
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidColorSpec, key)
		}
	}
	sort.Strings(found)

	if len(found) != 1 {
		return nil, fmt.Errorf("%w: exactly one of fixed, palette or tailwind must be set, got [%s]",
			ErrInvalidColorSpec, strings.Join(found, ", "))
	}

	key := found[0]
	value, ok := table[key].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a string", ErrInvalidColorSpec, key)
	}

	switch key {
	case "fixed":
		if !IsHexColor(value) {
			return nil, fmt.Errorf("%w: fixed color must be in hex format #RRGGBB, got %q", ErrInvalidColorSpec, value)
		}
		return Fixed{Hex: value}, nil
	default:
		name := strings.TrimSpace(value)
		if name == "" {
			return nil, fmt.Errorf("%w: palette name cannot be empty", ErrInvalidColorSpec)
		}
		return Palette{Name: name}, nil
	}
}
