package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName   = "config"
	configFormat = "yaml"
)

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(configName)
	viper.SetConfigType(configFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. DOCTORSHOUSE_MONGO_URI overrides mongo.uri
	viper.SetEnvPrefix("DOCTORSHOUSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read the config file (optional in Docker environments)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only fail if it's not a "file not found" error
			if os.Getenv("DOCTORSHOUSE_MONGO_URI") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	return config
}
