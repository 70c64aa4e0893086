// Package output handles formatted output for the CLI.
//
// This package provides utilities for:
//   - Output format selection (json, text, csv, yaml, table)
//   - Structured field output (label: value format)
//   - User feedback messages (Warning, Hint, Error) with TTY-aware coloring
//
// Colors are automatically disabled when output is not a TTY, ensuring
// clean output when piped or redirected.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mpyw/sublook/internal/cli/colors"
	"github.com/mpyw/sublook/internal/cli/terminal"
)

// Format represents the output format.
type Format string

const (
	// FormatJSON outputs the result record as JSON.
	FormatJSON Format = "json"
	// FormatText outputs one subnet ID per line.
	FormatText Format = "text"
	// FormatCSV outputs subnet IDs joined by commas.
	FormatCSV Format = "csv"
	// FormatYAML outputs the result record as YAML.
	FormatYAML Format = "yaml"
	// FormatTable outputs a human-readable table.
	FormatTable Format = "table"
)

// ParseFormat parses a format string and returns the Format.
// An empty string selects the default for w: table on a terminal, json otherwise.
func ParseFormat(s string, w io.Writer) (Format, error) {
	switch f := Format(s); f {
	case "":
		if terminal.Inspect(w).TTY {
			return FormatTable, nil
		}
		return FormatJSON, nil
	case FormatJSON, FormatText, FormatCSV, FormatYAML, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q: expected json, text, csv, yaml or table", s)
	}
}

// Writer provides formatted output methods.
type Writer struct {
	w io.Writer
}

// New creates a new output writer.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Field prints a labeled field.
func (o *Writer) Field(label, value string) {
	_, _ = fmt.Fprintf(o.w, "%s %s\n", colors.FieldLabel(label+":"), value)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Warning prints a warning message in yellow.
// Used to alert users about non-critical issues that don't prevent command execution.
// Example: "Warning: tag "Tier": --tag Tier=Data overrides --tag Tier=Web".
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Warning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Warning("Warning: "+msg))
}

// Hint prints a hint message in cyan.
// Example: "Hint: pass --region or set AWS_REGION".
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Hint(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Info("Hint: "+msg))
}

// Error prints an error message in red.
// Used for user-facing error messages that are not Go errors.
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Error(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Error("Error: "+msg))
}

// Info prints an informational message in yellow (without "Warning:" prefix).
// Example: "No subnets matched.".
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Info(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(w, colors.Warning(msg))
}

// Printf writes a formatted message to the writer.
func Printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
