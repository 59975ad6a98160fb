package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssisdev/sisctl/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sisctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://sis.example.edu/api
  timeout: 30s
session:
  path: /tmp/session.json
logging:
  level: debug
`)

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://sis.example.edu/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "debug", cfg.Logging.Level)

	session, err := cfg.SessionPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/session.json", session)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://sis.example.edu/api
`)
	t.Setenv("SISCTL_API_BASE_URL", "https://staging.example.edu/api")
	t.Setenv("SISCTL_LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.edu/api", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed url", "api:\n  base_url: '::not a url'\n"},
		{"relative url", "api:\n  base_url: backend.local\n"},
		{"bad timeout", "api:\n  timeout: fifteen\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestSessionPathDefault(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	path, err := cfg.SessionPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("sisctl", "session.json"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}
