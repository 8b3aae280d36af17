package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://api.modashop.app", cfg.APIBaseURL)
	assert.Equal(t, ".modashop.env", cfg.OverrideFile)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modashop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\napi_base_url: http://localhost:9000\n"), 0o600))
	t.Setenv(configFileEnvName, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://localhost:9000", cfg.APIBaseURL)
	assert.Equal(t, "data", cfg.DataDir, "unset keys keep defaults")
}

func TestLoadExplicitFileMissing(t *testing.T) {
	t.Setenv(configFileEnvName, filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
