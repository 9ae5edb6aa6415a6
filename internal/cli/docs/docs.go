// Package docs holds the docs command
// e.g., labelflair docs ...
package docs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/labelflair/internal/cli"
	"github.com/thenoetrevino/labelflair/internal/cli/handler"
	"github.com/thenoetrevino/labelflair/internal/render"
)

// Styles accepted by --style
var styles = []string{render.AutoStyle, "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}

const (
	defaultTitle = "Labels"
	defaultWidth = 80
)

// DocsCmd returns the docs command
func DocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs [PATH]",
		Short: "Write a markdown reference of all labels",
		Long: `Resolve labelflair.toml and produce a markdown table listing every label
with its color, description and former names.

The markdown goes to stdout unless PATH is given. --render pretty-prints it
for the terminal instead.

Examples:
  # Print markdown
  labelflair docs

  # Keep a reference in the repository
  labelflair docs docs/LABELS.md --title "Issue labels"

  # Read it in the terminal
  labelflair docs --render --style dark
`,
		Args: cli.UsageArgs(cobra.MaximumNArgs(1)),
		RunE: handler.Command(&docsHandler{}, parseDocsFlags),
	}

	cmd.Flags().String("title", defaultTitle, "Heading of the reference")
	cmd.Flags().Bool("render", false, "Render the markdown for the terminal")
	cmd.Flags().String("style", render.AutoStyle, "Render style: auto, dark, light, notty, ascii, dracula, pink, tokyo-night")
	cmd.Flags().Int("width", defaultWidth, "Word wrap width when rendering")

	return cmd
}

// docsHandler implements handler.Handler for docs
type docsHandler struct{}

// Execute implements the Handler interface
func (h *docsHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
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

	md := render.Markdown(args.GetString("title", defaultTitle), labels)
	result := &docsResult{Count: len(labels), Markdown: md}

	if args.GetBool("render") {
		style := args.GetString("style", render.AutoStyle)
		rendered, err := render.RenderMarkdown(md, style, args.GetInt("width", defaultWidth))
		if err != nil {
			return nil, err
		}
		result.rendered = rendered
		return result, nil
	}

	if path := cli.PathArg(args.Args, ""); path != "" {
		if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write label reference to %s: %w", path, err)
		}
		slog.Debug("label reference written", "path", path, "count", len(labels))
		result.Path = path
	}

	return result, nil
}

// docsResult represents the result of docs
type docsResult struct {
	Path     string `json:"path,omitempty"`
	Count    int    `json:"count"`
	Markdown string `json:"markdown"`
	rendered string
}

// PrintHuman implements cli.HumanPrinter
func (r *docsResult) PrintHuman(w io.Writer) error {
	var err error
	switch {
	case r.rendered != "":
		_, err = io.WriteString(w, r.rendered)
	case r.Path != "":
		_, err = fmt.Fprintf(w, "Label reference written to %s\n", r.Path)
	default:
		_, err = io.WriteString(w, r.Markdown)
	}
	return err
}

func parseDocsFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)

	if _, err := parser.ParseString("title"); err != nil {
		return err
	}
	if _, err := parser.ParseChoice("style", styles...); err != nil {
		return err
	}
	if _, err := parser.ParsePositiveInt("width"); err != nil {
		return err
	}

	renderOutput, err := parser.ParseBool("render")
	if err != nil {
		return err
	}
	if renderOutput && cmd.Flags().NArg() > 0 {
		return fmt.Errorf("%w: --render writes to the terminal and cannot be combined with PATH", cli.ErrUsage)
	}
	return nil
}
