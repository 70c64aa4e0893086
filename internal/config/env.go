package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/samber/lo"
)

// Environment holds the credential variables of the classic EC2 tooling.
// Several historical names exist for each value; the first non-empty one wins.
type Environment struct {
	AWSURL string `env:"AWS_URL"`
	EC2URL string `env:"EC2_URL"`

	AccessKeyID  string `env:"AWS_ACCESS_KEY_ID"`
	AccessKey    string `env:"AWS_ACCESS_KEY"`
	EC2AccessKey string `env:"EC2_ACCESS_KEY"`

	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	SecretKey       string `env:"AWS_SECRET_KEY"`
	EC2SecretKey    string `env:"EC2_SECRET_KEY"`

	SessionToken     string `env:"AWS_SESSION_TOKEN"`
	SecurityToken    string `env:"AWS_SECURITY_TOKEN"`
	EC2SecurityToken string `env:"EC2_SECURITY_TOKEN"`

	Profile        string `env:"AWS_PROFILE"`
	DefaultProfile string `env:"AWS_DEFAULT_PROFILE"`

	Region        string `env:"AWS_REGION"`
	DefaultRegion string `env:"AWS_DEFAULT_REGION"`
	EC2Region     string `env:"EC2_REGION"`
}

// LoadEnvironment parses the process environment.
func LoadEnvironment() (*Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &e, nil
}

// EndpointURL returns the first configured endpoint URL.
func (e *Environment) EndpointURL() string {
	return lo.CoalesceOrEmpty(e.AWSURL, e.EC2URL)
}

// AccessKeyIDValue returns the first configured access key ID.
func (e *Environment) AccessKeyIDValue() string {
	return lo.CoalesceOrEmpty(e.AccessKeyID, e.AccessKey, e.EC2AccessKey)
}

// SecretAccessKeyValue returns the first configured secret access key.
func (e *Environment) SecretAccessKeyValue() string {
	return lo.CoalesceOrEmpty(e.SecretAccessKey, e.SecretKey, e.EC2SecretKey)
}

// SessionTokenValue returns the first configured session token.
func (e *Environment) SessionTokenValue() string {
	return lo.CoalesceOrEmpty(e.SessionToken, e.SecurityToken, e.EC2SecurityToken)
}

// ProfileValue returns the shared config profile selected by the environment.
func (e *Environment) ProfileValue() string {
	return lo.CoalesceOrEmpty(e.Profile, e.DefaultProfile)
}

// RegionValue returns the first configured region.
func (e *Environment) RegionValue() string {
	return lo.CoalesceOrEmpty(e.Region, e.DefaultRegion, e.EC2Region)
}
