package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/labelflair/internal/cli"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// ExecuteCommand runs a cobra command and captures its output
func ExecuteCommand(t *testing.T, cmd *cobra.Command) (string, error) {
	t.Helper()

	var executeErr error
	output := CaptureOutput(t, func() {
		executeErr = cmd.Execute()
	})

	return output, executeErr
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}

// NewRootCommand builds a throwaway root carrying the global flags and
// CLI setup, with sub attached, so a subcommand can be run in isolation
func NewRootCommand(sub *cobra.Command, args ...string) *cobra.Command {
	root := &cobra.Command{Use: "labelflair"}
	cli.ConfigureRoot(root)
	root.AddCommand(sub)
	SetupCobraCommand(root, args)
	return root
}

// WriteConfig writes content as labelflair.toml in a fresh temp dir and returns its path
func WriteConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "labelflair.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// SampleConfig is a small configuration exercising both label forms and both color specs
const SampleConfig = `
[[label]]
name = "good-first-issue"
color = "#4ade80"
description = "Good for newcomers"

[[group]]
prefix = "C-"
colors = { palette = "red" }
labels = ["bug", { name = "feature", description = "A new feature", aliases = ["enhancement"] }]

[[group]]
prefix = "P-"
colors = { fixed = "#3b82f6" }
labels = ["merge", "block"]
`
