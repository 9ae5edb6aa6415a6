// Package cli holds the plumbing shared by every labelflair subcommand:
// the per-invocation CLI context, output formatting and exit codes.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/labelflair/internal/app"
	"github.com/thenoetrevino/labelflair/internal/config"
	"github.com/thenoetrevino/labelflair/internal/logging"
	"github.com/thenoetrevino/labelflair/internal/models"
)

// CLI represents the CLI application context
type CLI struct {
	App        *app.App // Application container with services
	ConfigPath string   // Resolved configuration file path
}

// NewCLI resolves the configuration path and builds the application container
func NewCLI(configFlag string, opts ...app.Option) *CLI {
	return &CLI{
		App:        app.New(opts...),
		ConfigPath: config.ResolvePath(configFlag),
	}
}

// Labels loads and resolves the configuration
func (c *CLI) Labels() ([]*models.Label, error) {
	return c.App.Generate(c.ConfigPath)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

// ConfigureRoot registers the global flags on root and sets up logging and
// the CLI context before any subcommand runs
func ConfigureRoot(root *cobra.Command) {
	root.PersistentFlags().String("config", "", "Configuration file (default $"+config.EnvConfigPath+" or "+config.DefaultPath+")")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().Bool("json", false, "Output in JSON format")
	root.PersistentFlags().Bool("quiet", false, "Minimal output")

	root.SilenceUsage = true
	root.SilenceErrors = true

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logging.Init(os.Stderr, verbose)

		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		if jsonOutput && quietMode {
			return fmt.Errorf("%w: --json and --quiet cannot be used together", ErrUsage)
		}

		configFlag, _ := cmd.Flags().GetString("config")
		c := NewCLI(configFlag, app.WithLogger(logging.Logger))
		slog.Debug("cli initialized", "config", c.ConfigPath)

		cmd.SetContext(WithCLI(cmd.Context(), c))
		return nil
	}
}

// UsageArgs wraps a cobra positional argument validator so its failures map to ExitUsage
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}

// PathArg returns the first positional argument or def when none was given
func PathArg(args []string, def string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return def
}
