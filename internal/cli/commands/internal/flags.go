package internal

import (
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/sublook/internal/config"
	"github.com/mpyw/sublook/internal/logging"
)

// Flag names shared by every command.
const (
	FlagRegion      = "region"
	FlagProfile     = "profile"
	FlagEndpointURL = "endpoint-url"
	FlagConfig      = "config"
	FlagVerbose     = "verbose"
)

// GlobalFlags returns the connection flags accepted by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagRegion,
			Aliases: []string{"r"},
			Usage:   "AWS region to query (falls back to config file, AWS_REGION, AWS_DEFAULT_REGION, EC2_REGION)",
		},
		&cli.StringFlag{
			Name:  FlagProfile,
			Usage: "Shared config profile to use",
		},
		&cli.StringFlag{
			Name:  FlagEndpointURL,
			Usage: "Override the EC2/STS endpoint URL (e.g. LocalStack)",
		},
		&cli.StringFlag{
			Name:    FlagConfig,
			Aliases: []string{"c"},
			Usage:   "Config file (default: $HOME/.sublook.yaml or ./.sublook.yaml)",
		},
		&cli.BoolFlag{
			Name:    FlagVerbose,
			Aliases: []string{"v"},
			Usage:   "Log diagnostics to stderr",
		},
	}
}

// Resolve merges the command line over the config file and the environment.
// Connection flags are filled in from cmd; command-specific values come in overrides.
func Resolve(cmd *cli.Command, overrides config.Overrides) (config.Resolved, error) {
	settings, err := config.Load(cmd.String(FlagConfig))
	if err != nil {
		return config.Resolved{}, err
	}

	environ, err := config.LoadEnvironment()
	if err != nil {
		return config.Resolved{}, err
	}

	overrides.Region = cmd.String(FlagRegion)
	overrides.Profile = cmd.String(FlagProfile)
	overrides.EndpointURL = cmd.String(FlagEndpointURL)

	return config.Resolve(overrides, settings, environ), nil
}

// Logger returns the diagnostic logger for cmd, writing to the root error writer.
func Logger(cmd *cli.Command) *logrus.Logger {
	return logging.New(lo.CoalesceOrEmpty[io.Writer](cmd.Root().ErrWriter, os.Stderr), cmd.Bool(FlagVerbose))
}
