package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestInitializeConfig_Defaults(t *testing.T) {
	// Run from a temp dir so a developer's local config file cannot leak in.
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 7, cfg.Matching.DateWindowDays)
	assert.Empty(t, cfg.Matching.RulesFile)
	assert.Equal(t, "json", cfg.Report.Format)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RECON_MATCHING_DATE_WINDOW_DAYS", "3")
	t.Setenv("RECON_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Matching.DateWindowDays)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, "debug", logger.GetLevel().String())
}

func TestConfigureLoggingFromConfig_InvalidLevel(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "nonsense"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, "info", logger.GetLevel().String())
}
