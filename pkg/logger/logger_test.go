package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Default(t *testing.T) {
	// 无任何选项时退化为控制台日志器
	log, err := New(Options{})
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("console fallback")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "verbose"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webhook.log")
	log, err := New(Options{Level: "debug", Filename: path})
	require.NoError(t, err)

	log.Debug("message sent")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "message sent")
}

func TestNew_LevelFiltersOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webhook.log")
	log, err := New(Options{Level: "warn", Filename: path})
	require.NoError(t, err)

	log.Debug("should be dropped")
	log.Warn("should be kept")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "should be dropped")
	assert.Contains(t, string(data), "should be kept")
}
