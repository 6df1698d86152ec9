package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.Development())
	assert.Equal(t, filepath.Join(dir, "data", "kartuli", "kartuli.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "state", "kartuli", "kartuli.log"), cfg.LogFile)
	assert.Equal(t, 1500*time.Millisecond, cfg.FeedbackDelay)
	assert.Equal(t, 10, cfg.SpellingSize)
	assert.Equal(t, 5, cfg.GrammarQuizLen)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("KARTULI_DB", "/tmp/other.db")
	t.Setenv("KARTULI_FEEDBACK_DELAY", "250ms")
	t.Setenv("KARTULI_ENV", "development")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, 250*time.Millisecond, cfg.FeedbackDelay)
	assert.True(t, cfg.Development())
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "kartuli.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spelling_size: 4\nfeedback_delay: 2s\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.SpellingSize)
	assert.Equal(t, 2*time.Second, cfg.FeedbackDelay)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("KARTULI_SPELLING_SIZE=7\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("KARTULI_SPELLING_SIZE") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.SpellingSize)
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	isolate(t)
	t.Setenv("KARTULI_SPELLING_SIZE", "-1")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spelling_size")
}
