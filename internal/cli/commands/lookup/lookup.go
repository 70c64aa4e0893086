// Package lookup provides the subnet lookup command.
package lookup

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/sublook/internal/cli/commands/internal"
	"github.com/mpyw/sublook/internal/cli/output"
	"github.com/mpyw/sublook/internal/config"
	"github.com/mpyw/sublook/internal/infra"
	"github.com/mpyw/sublook/internal/tagging"
	"github.com/mpyw/sublook/internal/usecase/identity"
	"github.com/mpyw/sublook/internal/usecase/subnet"
)

// Runner executes the lookup command.
type Runner struct {
	UseCase *subnet.LookupUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the lookup command.
type Options struct {
	Region string
	Tags   map[string]string
	Output output.Format
}

// Result is the record emitted on success. Changed is always false: the lookup never writes.
type Result struct {
	Changed   bool     `json:"changed"    yaml:"changed"`
	SubnetIDs []string `json:"subnet_ids" yaml:"subnet_ids"` //nolint:tagliatelle // field name consumed by playbooks
}

// Failure is the record emitted in JSON mode when the lookup fails.
type Failure struct {
	Failed bool   `json:"failed"`
	Msg    string `json:"msg"`
}

// Command returns the lookup command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "lookup",
		Aliases: []string{"ls"},
		Usage:   "Get the IDs of subnets matching all given tags",
		Description: `Query EC2 for subnets whose tags match every --tag KEY=VALUE pair and
print their IDs. Matching is exact and done by EC2; all pages are read.

Tags may also come from the "tags" mapping of the config file. Flags
override file entries with the same key.

OUTPUT FORMAT:
   json    {"changed": false, "subnet_ids": [...]} (default when piped)
   table   ID, VPC, AZ, CIDR, name and state (default on a terminal)
   text    one ID per line
   csv     IDs joined by commas, ready for options taking a subnet list
   yaml    same record as json

EXAMPLES:
   sublook lookup --region eu-west-1 --tag Environment=Test --tag Tier=Data
   sublook lookup -r eu-west-1 --tag Service=API --output csv
   sublook lookup --config ./network.yaml --output json`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "tag",
				Aliases: []string{"t"},
				Usage:   "Required tag as KEY=VALUE (repeatable)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: json, table, text, csv or yaml",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	parsed, err := tagging.ParseFlags(cmd.StringSlice("tag"))
	if err != nil {
		return err
	}
	for _, w := range parsed.Warnings {
		output.Warning(cmd.Root().ErrWriter, "%s", w)
	}

	resolved, err := cliinternal.Resolve(cmd, config.Overrides{
		Output: cmd.String("output"),
		Tags:   parsed.Tags,
	})
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(resolved.Output, cmd.Root().Writer)
	if err != nil {
		return err
	}

	logger := cliinternal.Logger(cmd)
	if cmd.Bool(cliinternal.FlagVerbose) && resolved.Credentials.Region != "" {
		logIdentity(ctx, logger, resolved.Credentials)
	}

	r := &Runner{
		UseCase: &subnet.LookupUseCase{
			Connector: &infra.EC2Connector{Credentials: resolved.Credentials},
			Logger:    logger,
		},
		Stdout: cmd.Root().Writer,
		Stderr: cmd.Root().ErrWriter,
	}
	return r.Run(ctx, Options{
		Region: resolved.Credentials.Region,
		Tags:   resolved.Tags,
		Output: format,
	})
}

// Run executes the lookup command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, subnet.LookupInput{
		Region: opts.Region,
		Tags:   opts.Tags,
	})
	if err != nil {
		r.hint(err)
		if opts.Output == output.FormatJSON {
			_ = output.JSON(r.Stdout, Failure{Failed: true, Msg: err.Error()})
		}
		return err
	}

	switch opts.Output {
	case output.FormatText:
		for _, id := range result.SubnetIDs {
			output.Printf(r.Stdout, "%s\n", id)
		}
	case output.FormatCSV:
		output.Printf(r.Stdout, "%s\n", strings.Join(result.SubnetIDs, ","))
	case output.FormatYAML:
		return writeYAML(r.Stdout, Result{SubnetIDs: result.SubnetIDs})
	case output.FormatTable:
		if len(result.Subnets) == 0 {
			output.Info(r.Stderr, "No subnets matched in %s.", result.Region)
			return nil
		}
		writeTable(r.Stdout, result.Subnets)
	default:
		return output.JSON(r.Stdout, Result{SubnetIDs: result.SubnetIDs})
	}

	return nil
}

func (r *Runner) hint(err error) {
	var authErr *subnet.AuthenticationError
	switch {
	case errors.Is(err, subnet.ErrMissingRegion):
		output.Hint(r.Stderr, "pass --region, set region in the config file, or export AWS_REGION")
	case errors.Is(err, subnet.ErrMissingTags):
		output.Hint(r.Stderr, "pass at least one --tag KEY=VALUE")
	case errors.As(err, &authErr):
		output.Hint(r.Stderr, "check which credentials are in use with: sublook whoami")
	}
}

// logIdentity records who the lookup runs as. Failures are logged, not returned;
// the lookup itself reports authentication problems.
func logIdentity(ctx context.Context, logger *logrus.Logger, creds infra.Credentials) {
	client, region, err := infra.NewSTSClient(ctx, creds)
	if err != nil {
		logger.WithError(err).Warn("could not resolve caller identity")
		return
	}

	uc := &identity.WhoAmIUseCase{Client: client, FindProfile: infra.FindProfileByAccountID}
	who, err := uc.Execute(ctx, identity.WhoAmIInput{Region: region})
	if err != nil {
		logger.WithError(err).Warn("could not resolve caller identity")
		return
	}

	logger.WithFields(logrus.Fields{
		"account": who.AccountID,
		"arn":     who.ARN,
		"profile": who.Profile,
		"region":  who.Region,
	}).Debug("resolved caller identity")
}
