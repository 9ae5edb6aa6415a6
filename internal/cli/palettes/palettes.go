// Package palettes holds the palettes command
// e.g., labelflair palettes ...
package palettes

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/labelflair/internal/cli"
	"github.com/thenoetrevino/labelflair/internal/cli/handler"
	"github.com/thenoetrevino/labelflair/internal/palette"
	"github.com/thenoetrevino/labelflair/internal/render"
)

// PalettesCmd returns the palettes command
func PalettesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palettes [NAME...]",
		Short: "List the built-in color palettes",
		Long: `List the palettes a group can use with colors = { palette = "NAME" }.

Shades are shown in the order labels receive them: the first label of a
group gets the first shade, the second label the second, and so on,
wrapping around after the last.

Examples:
  # All palettes
  labelflair palettes

  # Only a few
  labelflair palettes red blue

  # Names only, for scripts
  labelflair palettes --quiet
`,
		RunE: handler.SimpleCommand(&palettesHandler{}),
	}

	return cmd
}

// palettesHandler implements handler.Handler for palettes
type palettesHandler struct{}

// Execute implements the Handler interface
func (h *palettesHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	registry := cliInstance.App.Palettes
	if len(args.Args) == 0 {
		return &palettesResult{Palettes: registry.Entries()}, nil
	}

	entries := make([]palette.Entry, 0, len(args.Args))
	for _, name := range args.Args {
		shades, err := registry.ShadesFor(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, palette.Entry{Name: name, Shades: shades})
	}
	return &palettesResult{Palettes: entries}, nil
}

// palettesResult represents the result of palettes
type palettesResult struct {
	Palettes []palette.Entry `json:"palettes"`
}

// PrintHuman implements cli.HumanPrinter
func (r *palettesResult) PrintHuman(w io.Writer) error {
	return render.WritePalettes(w, r.Palettes)
}

// QuietLines implements cli.QuietPrinter
func (r *palettesResult) QuietLines() []string {
	names := make([]string, len(r.Palettes))
	for i, p := range r.Palettes {
		names[i] = p.Name
	}
	return names
}
