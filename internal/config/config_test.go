package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "data/lrnbox.db", cfg.Storage.Path)
	assert.Equal(t, 50, cfg.API.LoginBonus)
	assert.Equal(t, 100, cfg.API.SignupBonus)
	assert.Equal(t, 10, cfg.API.PlatformFeePercent)

	min, max := cfg.LatencyBounds()
	assert.Equal(t, 200*time.Millisecond, min)
	assert.Equal(t, time.Second, max)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
storage:
  path: /tmp/test.db
api:
  latency_min: 0s
  latency_max: 0s
  login_bonus: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.Path)
	assert.Equal(t, 25, cfg.API.LoginBonus)
	// Untouched fields keep their defaults.
	assert.Equal(t, 100, cfg.API.SignupBonus)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("LRNBOX_STORAGE_PATH", "/tmp/env.db")
	t.Setenv("LRNBOX_PLATFORM_FEE_PERCENT", "20")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.Path)
	assert.Equal(t, 20, cfg.API.PlatformFeePercent)
}

func TestLoadConfigValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cases := []string{
		"api:\n  latency_min: nonsense\n",
		"api:\n  latency_min: 2s\n  latency_max: 1s\n",
		"api:\n  platform_fee_percent: 150\n",
		"storage:\n  path: \"\"\n",
	}
	for _, content := range cases {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err, "config %q", content)
	}
}
