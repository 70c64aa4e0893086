// Package commands provides the command-line interface for sublook.
package commands

import (
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/sublook/internal/cli/commands/internal"
	"github.com/mpyw/sublook/internal/cli/commands/lookup"
	"github.com/mpyw/sublook/internal/cli/commands/whoami"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "sublook",
		Usage:   "Look up EC2 subnet IDs by tag",
		Version: "0.1.0",
		Flags:   cliinternal.GlobalFlags(),
		Commands: []*cli.Command{
			lookup.Command(),
			whoami.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}

// App is the main CLI application.
var App = MakeApp()
