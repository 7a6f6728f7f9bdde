package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "US", cfg.NerdGraph.Region)
	assert.Equal(t, DefaultTimeout, cfg.NerdGraph.Timeout)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Demo())
	assert.Empty(t, cfg.File)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, `
account_id: 1234567
poll_interval: 30s
nerdgraph:
  api_key: NRAK-FILE
  region: eu
log:
  level: debug
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 1234567, cfg.AccountID)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, "NRAK-FILE", cfg.NerdGraph.APIKey)
	assert.Equal(t, "EU", cfg.NerdGraph.Region)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Demo())
	assert.Equal(t, path, cfg.File)
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "nerdgraph:\n  api_key: NRAK-FILE\n")
	t.Setenv("NRQLTUTOR_NERDGRAPH_API_KEY", "NRAK-ENV")
	t.Setenv("NRQLTUTOR_ACCOUNT_ID", "42")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "NRAK-ENV", cfg.NerdGraph.APIKey)
	assert.Equal(t, 42, cfg.AccountID)
}

func TestFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("NRQLTUTOR_ACCOUNT_ID", "42")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("account", 0, "")
	fs.String("db", "", "")
	fs.String("log-level", "", "")
	require.NoError(t, fs.Parse([]string{"--account", "7", "--log-level", "warn"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.AccountID)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.DB, "unset flags must not override")
}

func TestLoadInvalid(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		body string
	}{
		{"region", "nerdgraph:\n  region: APAC\n"},
		{"poll", "poll_interval: 10ms\n"},
		{"account", "account_id: -3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body), nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"NRQLTUTOR_NERDGRAPH_API_KEY": "nerdgraph.api_key",
		"NRQLTUTOR_LOG_LEVEL":         "log.level",
		"NRQLTUTOR_LLM_MODEL":         "llm.model",
		"NRQLTUTOR_ACCOUNT_ID":        "account_id",
		"NRQLTUTOR_POLL_INTERVAL":     "poll_interval",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}
