package app

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/labelflair/internal/config"
	"github.com/thenoetrevino/labelflair/internal/models"
	"github.com/thenoetrevino/labelflair/internal/palette"
	labelservice "github.com/thenoetrevino/labelflair/internal/services/label"
)

// App holds all application services and provides dependency injection.
// This is the main application container shared by every CLI command.
type App struct {
	// Palettes available to color specs
	Palettes *palette.Registry

	// Service layer (business logic)
	LabelService labelservice.Service

	logger *slog.Logger
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.registry == nil {
		cfg.registry = palette.Default()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &App{
		Palettes:     cfg.registry,
		LabelService: labelservice.NewService(cfg.registry),
		logger:       cfg.logger,
	}
}

// Generate loads the configuration at path and resolves it into labels
func (a *App) Generate(path string) ([]*models.Label, error) {
	a.logger.Debug("loading configuration", "path", path)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("configuration loaded",
		"version", cfg.Version,
		"groups", len(cfg.Groups),
		"labels", len(cfg.Labels))

	labels, err := a.LabelService.Resolve(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	a.logger.Debug("resolved labels", "count", len(labels))
	return labels, nil
}

// Close performs cleanup of application resources.
// Currently a no-op, but provided for future resource management needs.
func (a *App) Close() error {
	return nil
}
