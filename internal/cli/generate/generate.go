// Package generate holds the generate command
// e.g., labelflair generate ...
package generate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/labelflair/internal/cli"
	"github.com/thenoetrevino/labelflair/internal/cli/handler"
	"github.com/thenoetrevino/labelflair/internal/labelsfile"
	"github.com/thenoetrevino/labelflair/internal/models"
)

// StdoutPath makes generate write the YAML to stdout
const StdoutPath = "-"

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [PATH]",
		Short: "Resolve the configuration and write labels.yml",
		Long: `Resolve labelflair.toml into a flat list of labels and write it as YAML.

PATH defaults to labels.yml; use - to write to stdout. Nothing is written
when the configuration fails to resolve.

Examples:
  # Write labels.yml next to labelflair.toml
  labelflair generate

  # Custom paths
  labelflair generate --config .github/labelflair.toml .github/labels.yml

  # Pipe into another tool
  labelflair generate - | yq '.[].name'

  # JSON summary for agents
  labelflair generate --json
`,
		Args: cli.UsageArgs(cobra.MaximumNArgs(1)),
		RunE: handler.Command(&generateHandler{}, parseGenerateFlags),
	}

	return cmd
}

// generateHandler implements handler.Handler for generate
type generateHandler struct{}

// Execute implements the Handler interface
func (h *generateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	path := cli.PathArg(args.Args, labelsfile.DefaultPath)

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

	if path == StdoutPath {
		if err := labelsfile.Encode(os.Stdout, labels); err != nil {
			return nil, fmt.Errorf("failed to write labels: %w", err)
		}
		// The YAML is the output
		return nil, nil
	}

	if err := labelsfile.WriteFile(path, labels); err != nil {
		return nil, err
	}
	slog.Debug("labels written", "path", path, "count", len(labels))

	return &generateResult{
		Path:   path,
		Count:  len(labels),
		Labels: labels,
	}, nil
}

// generateResult represents the result of generate
type generateResult struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Labels []*models.Label `json:"labels"`
}

// PrintHuman implements cli.HumanPrinter
func (r *generateResult) PrintHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Labels written to %s\n", r.Path)
	return err
}

func parseGenerateFlags(cmd *cobra.Command) error {
	jsonOutput, _, _ := handler.NewFlagParser(cmd).OutputFormats()
	if jsonOutput && len(cmd.Flags().Args()) > 0 && cmd.Flags().Arg(0) == StdoutPath {
		return fmt.Errorf("%w: --json cannot be combined with writing labels to stdout", cli.ErrUsage)
	}
	return nil
}
