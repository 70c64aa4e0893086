// Package colors provides pre-configured color functions for CLI output.
package colors

import "github.com/fatih/color"

//nolint:gochecknoglobals // Immutable color definitions initialized at package load
var (
	// Warning formats text in yellow for warning messages.
	Warning = color.New(color.FgYellow).SprintFunc()

	// Error formats text in red for error messages.
	Error = color.New(color.FgRed).SprintFunc()

	// Info formats text in cyan for informational messages.
	Info = color.New(color.FgCyan).SprintFunc()

	// FieldLabel formats field labels (e.g., "Account:", "Region:") in cyan.
	FieldLabel = color.New(color.FgCyan).SprintFunc()

	// SubnetID formats subnet identifiers in green.
	SubnetID = color.New(color.FgGreen).SprintFunc()
)
