// Package infra provides AWS client initialization.
package infra

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/mpyw/sublook/internal/api/ec2api"
)

// ErrNoCredentialsProvider is returned when the loaded configuration carries no credentials provider.
var ErrNoCredentialsProvider = errors.New("no credentials provider configured")

// Credentials holds the caller-supplied connection settings.
// Empty fields fall back to the SDK default chain.
type Credentials struct {
	Region          string
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	EndpointURL     string
}

// LoadConfig loads the AWS configuration for the given credentials.
func LoadConfig(ctx context.Context, creds Credentials) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if creds.Region != "" {
		opts = append(opts, config.WithRegion(creds.Region))
	}
	if creds.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(creds.Profile))
	}
	if creds.AccessKeyID != "" || creds.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}

	if creds.EndpointURL != "" {
		cfg.BaseEndpoint = aws.String(creds.EndpointURL)
	}

	return cfg, nil
}

// RetrieveCredentials resolves the credentials of cfg once, surfacing missing or invalid sources.
func RetrieveCredentials(ctx context.Context, cfg aws.Config) error {
	if cfg.Credentials == nil {
		return ErrNoCredentialsProvider
	}
	_, err := cfg.Credentials.Retrieve(ctx)
	return err
}

// EC2Connector opens region-scoped EC2 clients.
type EC2Connector struct {
	Credentials Credentials
}

// Connect returns an EC2 client for region after its credentials have been resolved.
func (c *EC2Connector) Connect(ctx context.Context, region string) (ec2api.DescribeSubnetsAPI, error) {
	creds := c.Credentials
	creds.Region = region

	cfg, err := LoadConfig(ctx, creds)
	if err != nil {
		return nil, err
	}
	if err := RetrieveCredentials(ctx, cfg); err != nil {
		return nil, err
	}

	return ec2.NewFromConfig(cfg), nil
}

// NewSTSClient creates a new STS client and reports the region it was resolved for.
func NewSTSClient(ctx context.Context, creds Credentials) (*sts.Client, string, error) {
	cfg, err := LoadConfig(ctx, creds)
	if err != nil {
		return nil, "", err
	}
	if err := RetrieveCredentials(ctx, cfg); err != nil {
		return nil, "", err
	}
	return sts.NewFromConfig(cfg), cfg.Region, nil
}
