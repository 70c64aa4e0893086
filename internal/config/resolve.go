package config

import (
	"maps"

	"github.com/samber/lo"

	"github.com/mpyw/sublook/internal/infra"
)

// Overrides holds values given explicitly on the command line.
type Overrides struct {
	Region      string
	Profile     string
	EndpointURL string
	Output      string
	Tags        map[string]string
}

// Resolved is the effective configuration of one invocation.
type Resolved struct {
	Credentials infra.Credentials
	Tags        map[string]string
	Output      string
}

// Resolve merges flags over settings over the legacy environment.
// Tags merge per key, with flag tags overriding file tags.
// Access keys are taken from the environment only when no profile is selected.
func Resolve(flags Overrides, settings *Settings, environ *Environment) Resolved {
	if settings == nil {
		settings = &Settings{}
	}
	if environ == nil {
		environ = &Environment{}
	}

	tags := make(map[string]string, len(settings.Tags)+len(flags.Tags))
	maps.Copy(tags, settings.Tags)
	maps.Copy(tags, flags.Tags)

	creds := infra.Credentials{
		Region:      lo.CoalesceOrEmpty(flags.Region, settings.Region, environ.RegionValue()),
		Profile:     lo.CoalesceOrEmpty(flags.Profile, settings.Profile, environ.ProfileValue()),
		EndpointURL: lo.CoalesceOrEmpty(flags.EndpointURL, settings.EndpointURL, environ.EndpointURL()),
	}
	// A selected profile owns its credentials; keys from the environment must not replace them.
	if creds.Profile == "" {
		creds.AccessKeyID = environ.AccessKeyIDValue()
		creds.SecretAccessKey = environ.SecretAccessKeyValue()
		creds.SessionToken = environ.SessionTokenValue()
	}

	return Resolved{
		Credentials: creds,
		Tags:        tags,
		Output:      lo.CoalesceOrEmpty(flags.Output, settings.Output),
	}
}
