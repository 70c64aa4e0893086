// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/sublook/internal/cli/output"
)

// CommandNotFound reports an unknown subcommand and the ones that exist.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)

	names := lo.FilterMap(cmd.Commands, func(c *cli.Command, _ int) (string, bool) {
		return c.Name, !c.Hidden && c.Name != "help"
	})

	output.Error(w, "unknown command %q", command)
	output.Hint(w, "available commands are %s; run '%s --help' for usage", strings.Join(names, ", "), cmd.Root().Name)
}
