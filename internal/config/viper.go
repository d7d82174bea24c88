// Package config also provides Viper-based hierarchical configuration:
// defaults, then an optional config.yaml, then EQYNAB_* environment
// variables.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.eq-ynab")
	v.AddConfigPath(".")

	v.SetEnvPrefix("EQYNAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The unprefixed LOG_* variables predate the viper config and stay
	// honored.
	if err := v.BindEnv("log.level", "EQYNAB_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		Logger.Warnf("Failed to bind log.level environment variables: %v", err)
	}
	if err := v.BindEnv("log.format", "EQYNAB_LOG_FORMAT", "LOG_FORMAT"); err != nil {
		Logger.Warnf("Failed to bind log.format environment variables: %v", err)
	}

	// A missing config file is fine, we run on defaults and env vars.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
