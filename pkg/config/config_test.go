package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultSize, cfg.Size)
	assert.Equal(t, time.Second, cfg.Budget)
	assert.Equal(t, 100, cfg.MaxTrials)
	assert.True(t, cfg.Warmup)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sumbench.yaml")
	data := `
size: 1000
seed: 7
budget: 250ms
max_trials: 10
warmup: false
cc: clang
disable:
  - c/ffi
sorted: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Size)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Budget)
	assert.Equal(t, 10, cfg.MaxTrials)
	assert.False(t, cfg.Warmup)
	assert.Equal(t, "clang", cfg.CC)
	assert.True(t, cfg.Disabled("c/ffi"))
	assert.False(t, cfg.Disabled("go/sum"))
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sumbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 1000\n"), 0o644))

	t.Setenv("SUMBENCH_SIZE", "2000")
	t.Setenv("SUMBENCH_BUDGET", "2s")
	t.Setenv("SUMBENCH_DISABLE", "yaegi/loop, yaegi/vek")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.Size)
	assert.Equal(t, 2*time.Second, cfg.Budget)
	assert.True(t, cfg.Disabled("yaegi/loop"))
	assert.True(t, cfg.Disabled("yaegi/vek"))
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Size = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Budget = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MaxTrials = 0
	assert.Error(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFindConfigFileEnv(t *testing.T) {
	t.Setenv("SUMBENCH_CONFIG", "/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", FindConfigFile())
}
