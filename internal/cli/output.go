package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// HumanPrinter is implemented by results that render themselves for humans
type HumanPrinter interface {
	PrintHuman(w io.Writer) error
}

// QuietPrinter is implemented by results that have a minimal form for shell capture
type QuietPrinter interface {
	QuietLines() []string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if q, ok := data.(QuietPrinter); ok {
			for _, line := range q.QuietLines() {
				fmt.Println(line)
			}
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Report prints err in the current mode, picking its code and suggestion
func (f *OutputFormatter) Report(err error) error {
	code, suggestion := ErrorCode(err)
	return f.ErrorWithSuggestion(code, err.Error(), suggestion)
}

func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case HumanPrinter:
		return v.PrintHuman(os.Stdout)
	default:
		fmt.Printf("%+v\n", data)
		return nil
	}
}
