// Package check holds the check command
// e.g., labelflair check ...
package check

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/labelflair/internal/cli"
	"github.com/thenoetrevino/labelflair/internal/cli/handler"
	"github.com/thenoetrevino/labelflair/internal/labelsfile"
)

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [PATH]",
		Short: "Verify labels.yml matches the configuration",
		Long: `Resolve labelflair.toml and compare the result with an existing labels file.

The comparison is semantic: labels are decoded and compared field by field,
so formatting differences do not matter. Exits with status 6 when the file
is missing or out of date. Only the local file is checked.

Examples:
  # Fail CI when labels.yml is stale
  labelflair check

  # Custom paths
  labelflair check --config .github/labelflair.toml .github/labels.yml

  # Machine readable diff
  labelflair check --json

  # Exit status only
  labelflair check --quiet || labelflair generate
`,
		Args: cli.UsageArgs(cobra.MaximumNArgs(1)),
		RunE: handler.SimpleCommand(&checkHandler{}),
	}

	return cmd
}

// checkHandler implements handler.Handler for check
type checkHandler struct{}

// Execute implements the Handler interface
func (h *checkHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
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

	generated, err := cliInstance.Labels()
	if err != nil {
		return nil, err
	}

	result := &checkResult{Path: path}

	stored, err := labelsfile.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		result.Missing = true
		result.Diff = labelsfile.Compare(nil, generated)
	case err != nil:
		return nil, err
	default:
		result.Diff = labelsfile.Compare(stored, generated)
	}

	result.UpToDate = !result.Missing && result.Diff.Empty()
	slog.Debug("checked labels file", "path", path, "up_to_date", result.UpToDate)

	if !result.UpToDate {
		return result, fmt.Errorf("%w: %s", cli.ErrOutdated, path)
	}
	return result, nil
}

// checkResult represents the result of check
type checkResult struct {
	Path     string          `json:"path"`
	UpToDate bool            `json:"upToDate"`
	Missing  bool            `json:"missing"`
	Diff     labelsfile.Diff `json:"diff"`
}

// PrintHuman implements cli.HumanPrinter
func (r *checkResult) PrintHuman(w io.Writer) error {
	var b strings.Builder

	switch {
	case r.UpToDate:
		fmt.Fprintf(&b, "%s is up to date\n", r.Path)
	case r.Missing:
		fmt.Fprintf(&b, "%s does not exist (%d labels would be written)\n", r.Path, len(r.Diff.Added))
	default:
		fmt.Fprintf(&b, "%s is out of date\n", r.Path)
		writeNames(&b, "+", r.Diff.Added)
		writeNames(&b, "-", r.Diff.Removed)
		writeNames(&b, "~", r.Diff.Changed)
		if r.Diff.Reordered {
			b.WriteString("  labels are in a different order\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeNames(b *strings.Builder, marker string, names []string) {
	for _, name := range names {
		fmt.Fprintf(b, "  %s %s\n", marker, name)
	}
}
