package cli

import (
	"errors"

	"github.com/thenoetrevino/labelflair/internal/config"
	"github.com/thenoetrevino/labelflair/internal/labelsfile"
	"github.com/thenoetrevino/labelflair/internal/palette"
	labelservice "github.com/thenoetrevino/labelflair/internal/services/label"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: File system errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Unknown flags, too many arguments, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: The configuration file does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: TOML that cannot be decoded, unknown keys, a corrupt labels file.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Unknown palettes, empty groups, duplicate names, bad colors,
	// unsupported versions or any other resolution failure.
	ExitValidation = 5

	// ExitOutdated indicates the labels file does not match the configuration.
	// Use for: check found missing, extra, changed or reordered labels.
	ExitOutdated = 6
)

// CLI errors
var (
	ErrUsage    = errors.New("invalid usage")
	ErrOutdated = errors.New("labels file is out of date")
)

var validationErrors = []error{
	labelservice.ErrNilConfig,
	labelservice.ErrUnsupportedVersion,
	labelservice.ErrEmptyGroup,
	labelservice.ErrEmptyLabelName,
	labelservice.ErrInvalidColor,
	labelservice.ErrDuplicateLabelName,
	palette.ErrUnknownPalette,
	palette.ErrEmptyPalette,
	palette.ErrInvalidCount,
	config.ErrInvalidColorSpec,
	config.ErrInvalidLabelEntry,
}

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrOutdated):
		return ExitOutdated
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, config.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, config.ErrMalformed), errors.Is(err, labelsfile.ErrMalformed):
		return ExitDataErr
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return ExitValidation
		}
	}
	return ExitError
}

// ErrorCode returns the machine readable code and an optional suggestion for err
func ErrorCode(err error) (code string, suggestion string) {
	switch ExitCodeFor(err) {
	case ExitOutdated:
		return "LABELS_OUTDATED", "Run 'labelflair generate' to update the labels file"
	case ExitUsage:
		return "USAGE_ERROR", "Run 'labelflair --help' for usage"
	case ExitNotFound:
		return "CONFIG_NOT_FOUND", "Create labelflair.toml, pass --config or set " + config.EnvConfigPath
	case ExitDataErr:
		return "MALFORMED_DATA", ""
	case ExitValidation:
		return "VALIDATION_ERROR", ""
	default:
		return "ERROR", ""
	}
}
