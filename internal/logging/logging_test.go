package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kartuli/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"production", "production"},
		{"development", "development"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "logs", "kartuli.log")
			log, err := New(&config.Config{Env: tt.env, LogFile: path})
			require.NoError(t, err)

			log.Info("lesson completed")
			require.NoError(t, log.Sync())

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), "lesson completed")
		})
	}
}

func TestDevelopmentLogsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kartuli.log")
	log, err := New(&config.Config{Env: "development", LogFile: path})
	require.NoError(t, err)

	log.Debug("quiz started")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "quiz started")
}
