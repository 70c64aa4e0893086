package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpyw/sublook/internal/config"
	"github.com/mpyw/sublook/internal/infra"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	settings := &config.Settings{
		Region:      "eu-west-1",
		Profile:     "file-profile",
		EndpointURL: "http://file",
		Output:      "yaml",
		Tags:        map[string]string{"Environment": "Test", "Tier": "Web"},
	}
	environ := &config.Environment{
		AccessKeyID:     "AKID",
		SecretAccessKey: "secret",
		SecurityToken:   "token",
		EC2Region:       "us-east-1",
		EC2URL:          "http://env",
	}

	t.Run("flags win", func(t *testing.T) {
		t.Parallel()

		got := config.Resolve(config.Overrides{
			Region:      "ap-northeast-1",
			Profile:     "flag-profile",
			EndpointURL: "http://flag",
			Output:      "table",
			Tags:        map[string]string{"Tier": "Data"},
		}, settings, environ)

		assert.Equal(t, config.Resolved{
			Credentials: infra.Credentials{
				Region:      "ap-northeast-1",
				Profile:     "flag-profile",
				EndpointURL: "http://flag",
			},
			Tags:   map[string]string{"Environment": "Test", "Tier": "Data"},
			Output: "table",
		}, got)
	})

	t.Run("file over environment", func(t *testing.T) {
		t.Parallel()

		got := config.Resolve(config.Overrides{}, settings, environ)

		assert.Equal(t, "eu-west-1", got.Credentials.Region)
		assert.Equal(t, "http://file", got.Credentials.EndpointURL)
		assert.Equal(t, "yaml", got.Output)
		assert.Equal(t, settings.Tags, got.Tags)
	})

	t.Run("environment as last resort", func(t *testing.T) {
		t.Parallel()

		got := config.Resolve(config.Overrides{}, nil, environ)

		assert.Equal(t, "us-east-1", got.Credentials.Region)
		assert.Equal(t, "http://env", got.Credentials.EndpointURL)
		assert.Empty(t, got.Credentials.Profile)
		assert.Empty(t, got.Tags)
	})

	t.Run("environment keys only without a profile", func(t *testing.T) {
		t.Parallel()

		got := config.Resolve(config.Overrides{}, nil, environ)

		assert.Equal(t, "AKID", got.Credentials.AccessKeyID)
		assert.Equal(t, "secret", got.Credentials.SecretAccessKey)
		assert.Equal(t, "token", got.Credentials.SessionToken)
	})

	t.Run("selected profile keeps environment keys out", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			flags    config.Overrides
			settings *config.Settings
			environ  *config.Environment
			want     string
		}{
			{
				name:    "profile flag",
				flags:   config.Overrides{Profile: "staging"},
				environ: environ,
				want:    "staging",
			},
			{
				name:     "profile in config file",
				settings: settings,
				environ:  environ,
				want:     "file-profile",
			},
			{
				name: "AWS_PROFILE next to legacy keys",
				environ: &config.Environment{
					Profile:      "ci",
					AccessKey:    "legacy",
					EC2SecretKey: "legacy-secret",
				},
				want: "ci",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				got := config.Resolve(tt.flags, tt.settings, tt.environ)

				assert.Equal(t, tt.want, got.Credentials.Profile)
				assert.Empty(t, got.Credentials.AccessKeyID)
				assert.Empty(t, got.Credentials.SecretAccessKey)
				assert.Empty(t, got.Credentials.SessionToken)
			})
		}
	})

	t.Run("nothing anywhere", func(t *testing.T) {
		t.Parallel()

		got := config.Resolve(config.Overrides{}, nil, nil)

		assert.Equal(t, config.Resolved{Tags: map[string]string{}}, got)
	})
}
