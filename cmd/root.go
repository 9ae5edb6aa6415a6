package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/labelflair/internal/cli"
	"github.com/thenoetrevino/labelflair/internal/cli/check"
	"github.com/thenoetrevino/labelflair/internal/cli/docs"
	"github.com/thenoetrevino/labelflair/internal/cli/generate"
	"github.com/thenoetrevino/labelflair/internal/cli/palettes"
	"github.com/thenoetrevino/labelflair/internal/cli/preview"
)

// Set with -ldflags "-X github.com/thenoetrevino/labelflair/cmd.version=..."
var version = "dev"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "labelflair",
		Short: "Labelflair - GitHub labels from a small TOML file",
		Long: `Labelflair turns a compact labelflair.toml (groups of labels sharing a prefix
and a color palette, plus standalone labels) into the flat labels.yml that
label sync tools consume.`,
		Version: version,
	}

	cli.ConfigureRoot(root)

	root.AddCommand(generate.GenerateCmd())
	root.AddCommand(check.CheckCmd())
	root.AddCommand(preview.PreviewCmd())
	root.AddCommand(docs.DocsCmd())
	root.AddCommand(palettes.PalettesCmd())

	return root
}

func Execute() error {
	return rootCmd.Execute()
}

// ReportError prints err in the output mode requested on the command line
func ReportError(err error) {
	jsonOutput, _ := rootCmd.PersistentFlags().GetBool("json")
	reportError(&cli.OutputFormatter{JSON: jsonOutput}, err)
}

func reportError(formatter *cli.OutputFormatter, err error) {
	// check already printed its result as JSON
	if formatter.JSON && errors.Is(err, cli.ErrOutdated) {
		return
	}
	if fmtErr := formatter.Report(err); fmtErr != nil {
		slog.Error("failed to report error", "error", fmtErr, "cause", err)
	}
}
