package labelsfile

import (
	"github.com/thenoetrevino/labelflair/internal/models"
)

// Diff summarises how a stored label list differs from a freshly generated one
type Diff struct {
	Added     []string `json:"added"`     // generated but missing from the file
	Removed   []string `json:"removed"`   // in the file but no longer generated
	Changed   []string `json:"changed"`   // same name, different color/description/aliases
	Reordered bool     `json:"reordered"` // same labels in a different order
}

// Empty reports whether both lists are identical
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0 && !d.Reordered
}

// Compare diffs the stored list against the generated one.
// Names are reported in the order they appear in their own list.
func Compare(stored, generated []*models.Label) Diff {
	d := Diff{
		Added:   []string{},
		Removed: []string{},
		Changed: []string{},
	}

	byName := make(map[string]*models.Label, len(stored))
	for _, l := range stored {
		byName[l.Name] = l
	}
	present := make(map[string]struct{}, len(generated))

	for _, g := range generated {
		present[g.Name] = struct{}{}
		s, ok := byName[g.Name]
		switch {
		case !ok:
			d.Added = append(d.Added, g.Name)
		case !s.Equal(g):
			d.Changed = append(d.Changed, g.Name)
		}
	}

	for _, s := range stored {
		if _, ok := present[s.Name]; !ok {
			d.Removed = append(d.Removed, s.Name)
		}
	}

	if len(d.Added) == 0 && len(d.Removed) == 0 && len(stored) == len(generated) {
		for i := range stored {
			if stored[i].Name != generated[i].Name {
				d.Reordered = true
				break
			}
		}
	}

	return d
}
