package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/pogoda/internal/client"
	"github.com/katiamach/pogoda/internal/retry"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, env := range []string{
		EnvConfigPath, EnvAPIKey, EnvBaseURL, EnvPort, EnvOrigin, EnvLogLevel,
		EnvConnectTimeout, EnvReadTimeout, EnvWriteTimeout,
		EnvMaxAttempts, EnvInitialDelay, EnvMaxDelay, EnvBackoffFactor,
	} {
		t.Setenv(env, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pogoda.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	assert.Nil(t, err)

	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	assert.Nil(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, retry.DefaultConfig, cfg.Retry)
	assert.Equal(t, client.DefaultConfig(), cfg.ClientConfig())
	assert.Equal(t, ErrNoAPIKey, cfg.RequireAPIKey())
}

func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, `
api_key: from-file
port: "9090"
provider:
  base_url: http://localhost:1234
  connect_timeout: 5s
  read_timeout: 10s
  write_timeout: 15s
retry:
  max_attempts: 5
  initial_delay: 500ms
  max_delay: 4s
  backoff_factor: 1.5
`)

	t.Setenv(EnvAPIKey, "from-env")
	t.Setenv(EnvReadTimeout, "20s")
	t.Setenv(EnvMaxAttempts, "4")

	cfg, err := Load(path)
	assert.Nil(t, err)

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://localhost:1234", cfg.Provider.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Provider.ConnectTimeout)
	assert.Equal(t, 20*time.Second, cfg.Provider.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Provider.WriteTimeout)
	assert.Equal(t, retry.Config{MaxAttempts: 4, InitialDelay: 500 * time.Millisecond, MaxDelay: 4 * time.Second, BackoffFactor: 1.5}, cfg.Retry)
	assert.Nil(t, cfg.RequireAPIKey())
}

func TestLoadPathFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, writeFile(t, "origin: https://pogoda.example\n"))

	cfg, err := Load("")
	assert.Nil(t, err)
	assert.Equal(t, "https://pogoda.example", cfg.Origin)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name        string
		file        string
		env         map[string]string
		expectedErr error
	}{
		{name: "bad duration", env: map[string]string{EnvConnectTimeout: "soon"}},
		{name: "bad attempts", env: map[string]string{EnvMaxAttempts: "three"}},
		{name: "bad factor", env: map[string]string{EnvBackoffFactor: "x"}},
		{name: "zero timeout", env: map[string]string{EnvWriteTimeout: "0s"}, expectedErr: ErrInvalidTimeout},
		{name: "no attempts", env: map[string]string{EnvMaxAttempts: "0"}, expectedErr: retry.ErrInvalidMaxAttempts},
		{name: "bad yaml", file: "retry: [", env: map[string]string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			path := ""
			if tc.file != "" {
				path = writeFile(t, tc.file)
			}

			_, err := Load(path)
			assert.NotNil(t, err)
			if tc.expectedErr != nil {
				assert.True(t, errors.Is(err, tc.expectedErr), "%v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
