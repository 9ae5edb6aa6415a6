// Package label resolves a labelflair configuration into the final list of labels.
package label

import (
	"fmt"

	"github.com/thenoetrevino/labelflair/internal/config"
	"github.com/thenoetrevino/labelflair/internal/models"
	"github.com/thenoetrevino/labelflair/internal/palette"
)

// Service defines all label resolution operations
type Service interface {
	// Resolve expands cfg into labels: standalone labels first, then every group,
	// each in declaration order. It fails as a whole; there is no partial result.
	Resolve(cfg *config.Config) ([]*models.Label, error)
}

// service implements Service interface
type service struct {
	registry *palette.Registry
}

// NewService creates a new label service backed by registry.
// A nil registry means the built-in palettes.
func NewService(registry *palette.Registry) Service {
	if registry == nil {
		registry = palette.Default()
	}
	return &service{
		registry: registry,
	}
}

// Resolve implements Service
func (s *service) Resolve(cfg *config.Config) ([]*models.Label, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cannot resolve labels: %w", ErrNilConfig)
	}
	if cfg.Version != config.CurrentVersion {
		return nil, fmt.Errorf("%w: %q (expected %q)", ErrUnsupportedVersion, cfg.Version, config.CurrentVersion)
	}

	labels := make([]*models.Label, 0, len(cfg.Labels))

	for i, standalone := range cfg.Labels {
		label, err := resolveStandalone(standalone)
		if err != nil {
			return nil, &LabelError{Index: i, Name: standalone.Name, Err: err}
		}
		labels = append(labels, label)
	}

	for i, group := range cfg.Groups {
		resolved, err := ResolveGroup(s.registry, i, group)
		if err != nil {
			return nil, err
		}
		labels = append(labels, resolved...)
	}

	if err := checkDuplicates(labels); err != nil {
		return nil, err
	}

	return labels, nil
}

// resolveStandalone goes through the same normalization as group entries;
// the color is taken as-is, no palette lookup.
func resolveStandalone(l config.StandaloneLabel) (*models.Label, error) {
	n, err := Normalize(config.DetailedLabel{
		Name:        l.Name,
		Description: l.Description,
		Aliases:     l.Aliases,
	})
	if err != nil {
		return nil, err
	}

	if !config.IsHexColor(l.Color) {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidColor, l.Color)
	}

	return &models.Label{
		Name:        n.Name,
		Color:       l.Color,
		Description: n.Description,
		Aliases:     n.Aliases,
	}, nil
}

// checkDuplicates reports the first name, in list order, that was already seen
func checkDuplicates(labels []*models.Label) error {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l.Name]; ok {
			return &DuplicateLabelError{Name: l.Name}
		}
		seen[l.Name] = struct{}{}
	}
	return nil
}
