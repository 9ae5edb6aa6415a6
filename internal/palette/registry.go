// Package palette holds the built-in label palettes and turns a color
// spec into the list of colors assigned to a group's labels.
package palette

import (
	"strings"
)

// Entry is a named palette and its shades, in assignment order
type Entry struct {
	Name   string   `json:"name"`
	Shades []string `json:"shades"`
}

// Registry maps palette names to curated shade lists.
// A Registry is never mutated after construction and is safe for concurrent use.
type Registry struct {
	names   []string
	shades  map[string][]string
	aliases map[string]string
}

var defaultRegistry = newTailwindRegistry()

// Default returns the built-in registry of Tailwind palettes
func Default() *Registry {
	return defaultRegistry
}

func newTailwindRegistry() *Registry {
	entries := make([]Entry, 0, len(tailwind))
	for _, e := range tailwind {
		entries = append(entries, Entry{Name: e.Name, Shades: centerOut(e.Shades)})
	}

	r := NewRegistry(entries...)
	for alias, name := range tailwindAliases {
		r.aliases[alias] = name
	}
	return r
}

// NewRegistry builds a registry from entries. Shades are used in the given order.
// Later entries with the same name replace earlier ones.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{
		names:   make([]string, 0, len(entries)),
		shades:  make(map[string][]string, len(entries)),
		aliases: make(map[string]string),
	}

	for _, e := range entries {
		key := normalizeName(e.Name)
		if _, exists := r.shades[key]; !exists {
			r.names = append(r.names, key)
		}
		shades := make([]string, len(e.Shades))
		copy(shades, e.Shades)
		r.shades[key] = shades
	}

	return r
}

// ShadesFor returns the ordered shades of the named palette.
// The returned slice is a copy.
func (r *Registry) ShadesFor(name string) ([]string, error) {
	key := normalizeName(name)
	if target, ok := r.aliases[key]; ok {
		key = target
	}

	shades, ok := r.shades[key]
	if !ok {
		return nil, &UnknownPaletteError{Name: name}
	}

	out := make([]string, len(shades))
	copy(out, shades)
	return out, nil
}

// Has reports whether name (or one of its aliases) is registered
func (r *Registry) Has(name string) bool {
	_, err := r.ShadesFor(name)
	return err == nil
}

// Names returns registered palette names in registration order
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Entries returns every registered palette in registration order
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.names))
	for _, name := range r.names {
		shades, _ := r.ShadesFor(name)
		out = append(out, Entry{Name: name, Shades: shades})
	}
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
