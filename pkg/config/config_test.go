package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test so that file values can apply.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

var configKeys = []string{
	"APP_ENV",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"LOG_TIME_FORMAT",
	"LOG_PREFIX",
	"ACCOUNT_CURRENCY",
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, configKeys...)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "GBP", cfg.Account.Currency)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Log.Level)
	assert.Equal(t, "[bankaccount]", cfg.Log.Prefix)
}

func TestLoadFromEnvironment(t *testing.T) {
	unsetEnv(t, configKeys...)
	t.Setenv("ACCOUNT_CURRENCY", " usd ")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_LEVEL", "-4")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Account.Currency)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, -4, cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	unsetEnv(t, configKeys...)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ACCOUNT_CURRENCY=EUR\nAPP_ENV=test\n"), 0o600))

	cfg, err := Load("does-not-exist.env", path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Account.Currency)
	assert.Equal(t, "test", cfg.Env)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	unsetEnv(t, configKeys...)
	t.Setenv("ACCOUNT_CURRENCY", "USD")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ACCOUNT_CURRENCY=EUR\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Account.Currency)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unsupported currency", "ACCOUNT_CURRENCY", "JPY"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"non-numeric log level", "LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, configKeys...)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestFindEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	found, err := FindEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = FindEnvFile(filepath.Join(dir, "nope.env"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
