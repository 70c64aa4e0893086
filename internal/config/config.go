// Package config loads sublook settings from the config file and the environment.
//
// Precedence, highest first: command-line flags, SUBLOOK_* variables, the
// config file, then the legacy EC2 variables understood by Environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overriding config file keys.
const EnvPrefix = "SUBLOOK"

// Settings holds values read from the config file and SUBLOOK_* variables.
type Settings struct {
	Region      string            `mapstructure:"region"`
	Profile     string            `mapstructure:"profile"`
	EndpointURL string            `mapstructure:"endpoint_url"`
	Output      string            `mapstructure:"output"`
	Tags        map[string]string `mapstructure:"-"`
	File        string            `mapstructure:"-"` // config file used, empty when none was found
}

// Load reads cfgFile, or .sublook.yaml from $HOME or the working directory when cfgFile is empty.
// A missing default file is not an error; a missing explicit file is.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".sublook")
	}

	v.SetEnvPrefix(EnvPrefix)
	for _, key := range []string{"region", "profile", "endpoint_url", "output"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	settings.File = v.ConfigFileUsed()

	if settings.File != "" {
		tags, err := readTags(settings.File)
		if err != nil {
			return nil, err
		}
		settings.Tags = tags
	}

	return settings, nil
}

// readTags decodes the tags mapping directly from the file.
// Viper folds key case and splits keys on dots, both of which would corrupt tag keys.
func readTags(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc struct {
		Tags map[string]string `yaml:"tags"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode tags in %s: %w", path, err)
	}

	return doc.Tags, nil
}
