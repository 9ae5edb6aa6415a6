package label

import (
	"sort"

	"github.com/thenoetrevino/labelflair/internal/config"
	"github.com/thenoetrevino/labelflair/internal/models"
	"github.com/thenoetrevino/labelflair/internal/palette"
)

// ResolveGroup expands one group into labels.
// Colors are assigned by position: the i-th entry gets the i-th color of the
// group's color spec, so reordering entries changes their colors.
func ResolveGroup(registry *palette.Registry, index int, group config.Group) ([]*models.Label, error) {
	wrap := func(err error) error {
		return &GroupError{Index: index, Prefix: group.Prefix, Err: err}
	}

	if len(group.Labels) == 0 {
		return nil, wrap(ErrEmptyGroup)
	}

	entries := make([]NormalizedLabel, 0, len(group.Labels))
	for i, entry := range group.Labels {
		n, err := Normalize(entry)
		if err != nil {
			return nil, wrap(&LabelError{Index: i, Name: entry.EntryName(), Err: err})
		}
		entries = append(entries, n)
	}

	if group.Sort {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})
	}

	colors, err := registry.Resolve(group.Colors, len(entries))
	if err != nil {
		return nil, wrap(err)
	}

	labels := make([]*models.Label, 0, len(entries))
	for i, n := range entries {
		labels = append(labels, &models.Label{
			Name:        group.Prefix + n.Name,
			Color:       colors[i],
			Description: n.Description,
			Aliases:     n.Aliases,
		})
	}

	return labels, nil
}
