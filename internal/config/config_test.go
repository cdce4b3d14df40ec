package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears key for the test and restores it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	prev, ok := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if ok {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, EnvOutput)
	unsetenv(t, EnvLogLevel)

	cfg, err := Load("default.xlsx", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "default.xlsx", cfg.OutputPath)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestLoadDotEnv(t *testing.T) {
	unsetenv(t, EnvOutput)
	unsetenv(t, EnvLogLevel)

	cfg, err := Load("default.xlsx", writeEnvFile(t, "GRANTBOOK_OUTPUT=/tmp/out.xlsx\nGRANTBOOK_LOG_LEVEL=debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.xlsx", cfg.OutputPath)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoadEnvironmentWins(t *testing.T) {
	unsetenv(t, EnvLogLevel)
	t.Setenv(EnvOutput, "env.xlsx")

	cfg, err := Load("default.xlsx", writeEnvFile(t, "GRANTBOOK_OUTPUT=file.xlsx\n"))
	require.NoError(t, err)
	assert.Equal(t, "env.xlsx", cfg.OutputPath)
}

func TestLoadInvalidLevel(t *testing.T) {
	unsetenv(t, EnvOutput)
	t.Setenv(EnvLogLevel, "loud")

	_, err := Load("default.xlsx", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
