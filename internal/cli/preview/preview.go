// Package preview holds the preview command
// e.g., labelflair preview ...
package preview

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/labelflair/internal/cli"
	"github.com/thenoetrevino/labelflair/internal/cli/handler"
	"github.com/thenoetrevino/labelflair/internal/models"
	"github.com/thenoetrevino/labelflair/internal/render"
)

// PreviewCmd returns the preview command
func PreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the resolved labels as colored chips",
		Long: `Resolve labelflair.toml and print every label the way it will look on
GitHub, followed by its color, description and former names.

Nothing is written to disk.

Examples:
  # Preview the default configuration
  labelflair preview

  # Names only
  labelflair preview --quiet
`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: handler.SimpleCommand(&previewHandler{}),
	}

	return cmd
}

// previewHandler implements handler.Handler for preview
type previewHandler struct{}

// Execute implements the Handler interface
func (h *previewHandler) Execute(ctx context.Context, _ *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	labels, err := cliInstance.Labels()
	if err != nil {
		return nil, err
	}

	return &previewResult{Labels: labels}, nil
}

// previewResult represents the result of preview
type previewResult struct {
	Labels []*models.Label `json:"labels"`
}

// PrintHuman implements cli.HumanPrinter
func (r *previewResult) PrintHuman(w io.Writer) error {
	if len(r.Labels) == 0 {
		_, err := fmt.Fprintln(w, "No labels defined")
		return err
	}
	return render.WriteLabels(w, r.Labels)
}

// QuietLines implements cli.QuietPrinter
func (r *previewResult) QuietLines() []string {
	names := make([]string, len(r.Labels))
	for i, l := range r.Labels {
		names[i] = l.Name
	}
	return names
}
