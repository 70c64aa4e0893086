package infra_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/sublook/internal/infra"
)

// isolate points the SDK at empty shared files and disables IMDS.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	for _, key := range []string{
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_SESSION_TOKEN",
		"AWS_PROFILE", "AWS_DEFAULT_PROFILE", "AWS_REGION", "AWS_DEFAULT_REGION",
		"AWS_ENDPOINT_URL", "AWS_WEB_IDENTITY_TOKEN_FILE", "AWS_ROLE_ARN",
		"AWS_CONTAINER_CREDENTIALS_RELATIVE_URI", "AWS_CONTAINER_CREDENTIALS_FULL_URI",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	// Cannot use t.Parallel() because of t.Setenv

	t.Run("static credentials, region and endpoint", func(t *testing.T) {
		isolate(t)

		cfg, err := infra.LoadConfig(context.Background(), infra.Credentials{
			Region:          "eu-west-1",
			AccessKeyID:     "AKIDEXAMPLE",
			SecretAccessKey: "secret",
			SessionToken:    "token",
			EndpointURL:     "http://127.0.0.1:4566",
		})
		require.NoError(t, err)

		assert.Equal(t, "eu-west-1", cfg.Region)
		assert.Equal(t, "http://127.0.0.1:4566", aws.ToString(cfg.BaseEndpoint))

		creds, err := cfg.Credentials.Retrieve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
		assert.Equal(t, "secret", creds.SecretAccessKey)
		assert.Equal(t, "token", creds.SessionToken)
	})

	t.Run("no endpoint leaves BaseEndpoint unset", func(t *testing.T) {
		isolate(t)

		cfg, err := infra.LoadConfig(context.Background(), infra.Credentials{Region: "us-east-1"})
		require.NoError(t, err)
		assert.Nil(t, cfg.BaseEndpoint)
	})

	t.Run("named profile is not replaced by ambient keys", func(t *testing.T) {
		isolate(t)
		require.NoError(t, os.WriteFile(os.Getenv("AWS_SHARED_CREDENTIALS_FILE"),
			[]byte("[staging]\naws_access_key_id = PROFILEKEY\naws_secret_access_key = profile-secret\n"), 0o600))
		t.Setenv("AWS_ACCESS_KEY_ID", "ENVKEY")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "env-secret")

		cfg, err := infra.LoadConfig(context.Background(), infra.Credentials{Region: "eu-west-1", Profile: "staging"})
		require.NoError(t, err)

		creds, err := cfg.Credentials.Retrieve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "PROFILEKEY", creds.AccessKeyID)
	})

	t.Run("unknown profile fails", func(t *testing.T) {
		isolate(t)

		_, err := infra.LoadConfig(context.Background(), infra.Credentials{Profile: "does-not-exist"})
		assert.Error(t, err)
	})
}

func TestRetrieveCredentials(t *testing.T) {
	t.Parallel()

	err := infra.RetrieveCredentials(context.Background(), aws.Config{})
	assert.ErrorIs(t, err, infra.ErrNoCredentialsProvider)
}

func TestEC2Connector_Connect(t *testing.T) {
	// Cannot use t.Parallel() because of t.Setenv

	t.Run("static credentials", func(t *testing.T) {
		isolate(t)

		c := &infra.EC2Connector{Credentials: infra.Credentials{
			AccessKeyID:     "AKIDEXAMPLE",
			SecretAccessKey: "secret",
		}}
		client, err := c.Connect(context.Background(), "eu-west-1")
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("no credentials anywhere", func(t *testing.T) {
		isolate(t)

		c := &infra.EC2Connector{}
		client, err := c.Connect(context.Background(), "eu-west-1")
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
