// Package whoami provides the caller identity command.
package whoami

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/sublook/internal/cli/commands/internal"
	"github.com/mpyw/sublook/internal/cli/output"
	"github.com/mpyw/sublook/internal/config"
	"github.com/mpyw/sublook/internal/infra"
	"github.com/mpyw/sublook/internal/usecase/identity"
	"github.com/mpyw/sublook/internal/usecase/subnet"
)

// Runner executes the whoami command.
type Runner struct {
	UseCase *identity.WhoAmIUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the whoami command.
type Options struct {
	Region string
	Output output.Format
}

// JSONOutput represents the JSON output structure for the whoami command.
type JSONOutput struct {
	Account string `json:"account"`
	ARN     string `json:"arn"`
	UserID  string `json:"user_id"` //nolint:tagliatelle // snake_case like the lookup record
	Region  string `json:"region"`
	Profile string `json:"profile,omitempty"`
}

// Command returns the whoami command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show which AWS identity the lookup would run as",
		Description: `Call STS GetCallerIdentity with the same credentials, region and endpoint
the lookup command would use, and print the account, ARN and region.
If a profile in ~/.aws/config targets the account, its name is shown too.

EXAMPLES:
   sublook whoami --region eu-west-1
   sublook whoami --profile staging --output json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: text (default) or json",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	format, err := ParseFormat(cmd.String("output"))
	if err != nil {
		return err
	}

	resolved, err := cliinternal.Resolve(cmd, config.Overrides{})
	if err != nil {
		return err
	}

	client, region, err := infra.NewSTSClient(ctx, resolved.Credentials)
	if err != nil {
		return &subnet.AuthenticationError{Err: err}
	}

	cliinternal.Logger(cmd).WithField("region", region).Debug("calling GetCallerIdentity")

	r := &Runner{
		UseCase: &identity.WhoAmIUseCase{
			Client:      client,
			FindProfile: infra.FindProfileByAccountID,
		},
		Stdout: cmd.Root().Writer,
		Stderr: cmd.Root().ErrWriter,
	}

	return r.Run(ctx, Options{Region: region, Output: format})
}

// ParseFormat accepts the formats whoami can print: labeled text (the default) and json.
func ParseFormat(s string) (output.Format, error) {
	switch f := output.Format(s); f {
	case "", output.FormatText:
		return output.FormatText, nil
	case output.FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q for whoami: expected text or json", s)
	}
}

// Run executes the whoami command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, identity.WhoAmIInput{Region: opts.Region})
	if err != nil {
		return err
	}

	if opts.Output == output.FormatJSON {
		return output.JSON(r.Stdout, JSONOutput{
			Account: result.AccountID,
			ARN:     result.ARN,
			UserID:  result.UserID,
			Region:  result.Region,
			Profile: result.Profile,
		})
	}

	out := output.New(r.Stdout)
	out.Field("Account", result.AccountID)
	out.Field("ARN", result.ARN)
	out.Field("UserID", result.UserID)
	out.Field("Region", result.Region)
	if result.Profile != "" {
		out.Field("Profile", result.Profile)
	}

	return nil
}
