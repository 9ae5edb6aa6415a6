// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/labelflair/internal/cli"
)

// FlagParser provides common flag extraction patterns.
// Validation failures wrap cli.ErrUsage.
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", cli.ErrUsage, flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	return p.cmd.Flags().GetString(flagName)
}

// ParsePositiveInt extracts an int flag that must be greater than 0
func (p *FlagParser) ParsePositiveInt(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: %s must be greater than 0", cli.ErrUsage, flagName)
	}
	return value, nil
}

// ParseChoice extracts a string flag that must be one of allowed
func (p *FlagParser) ParseChoice(flagName string, allowed ...string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.ToLower(strings.TrimSpace(value))
	if !slices.Contains(allowed, value) {
		return "", fmt.Errorf("%w: invalid %s %q (must be: %s)", cli.ErrUsage, flagName, value, strings.Join(allowed, ", "))
	}
	return value, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
