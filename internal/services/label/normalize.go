package label

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/labelflair/internal/config"
)

// NormalizedLabel is the single shape every label entry is reduced to
type NormalizedLabel struct {
	Name        string
	Description *string
	Aliases     []string
}

// Normalize converts a bare or detailed label entry into a NormalizedLabel.
// Names are trimmed; aliases default to an empty list.
func Normalize(entry config.LabelEntry) (NormalizedLabel, error) {
	switch e := entry.(type) {
	case config.BareLabel:
		return normalized(string(e), nil, nil)
	case config.DetailedLabel:
		return normalized(e.Name, e.Description, e.Aliases)
	default:
		return NormalizedLabel{}, fmt.Errorf("%w: unsupported label entry %T", config.ErrInvalidLabelEntry, entry)
	}
}

func normalized(name string, description *string, aliases []string) (NormalizedLabel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return NormalizedLabel{}, ErrEmptyLabelName
	}

	out := make([]string, len(aliases))
	copy(out, aliases)

	return NormalizedLabel{
		Name:        name,
		Description: description,
		Aliases:     out,
	}, nil
}
