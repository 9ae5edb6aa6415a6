package app

import (
	"log/slog"

	"github.com/thenoetrevino/labelflair/internal/palette"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	registry *palette.Registry
	logger   *slog.Logger
}

// WithRegistry replaces the built-in palettes
func WithRegistry(r *palette.Registry) Option {
	return func(cfg *appConfig) {
		cfg.registry = r
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
