package models

// Label is a fully resolved GitHub issue label.
// Names are unique within one resolution run; Aliases lists former names
// so sync tooling can rename instead of delete + create.
type Label struct {
	Name        string   `yaml:"name" json:"name"`
	Color       string   `yaml:"color" json:"color"` // Hex color code (e.g., "#4ade80")
	Description *string  `yaml:"description,omitempty" json:"description,omitempty"`
	Aliases     []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// DescriptionOrEmpty returns the description, or "" when unset
func (l *Label) DescriptionOrEmpty() string {
	if l.Description == nil {
		return ""
	}
	return *l.Description
}

// Equal reports whether two labels carry the same name, color, description and aliases.
// A nil and an empty alias list compare equal.
func (l *Label) Equal(other *Label) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.Name != other.Name || l.Color != other.Color {
		return false
	}
	if (l.Description == nil) != (other.Description == nil) {
		return false
	}
	if l.Description != nil && *l.Description != *other.Description {
		return false
	}
	if len(l.Aliases) != len(other.Aliases) {
		return false
	}
	for i := range l.Aliases {
		if l.Aliases[i] != other.Aliases[i] {
			return false
		}
	}
	return true
}
