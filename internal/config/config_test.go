package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLoggingDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	_, isText := logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}

func TestConfigureLoggingFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}

func TestConfigureLoggingInvalidLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "bogus")
	t.Setenv("LOG_FORMAT", "")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("EQYNAB_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("EQYNAB_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("EQYNAB_MISSING_KEY", "fallback"))
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	assert.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("EQYNAB_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	assert.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}
