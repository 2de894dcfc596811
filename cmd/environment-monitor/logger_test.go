package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFileLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "monitor.log")

	l, err := initFileLogger(logFile, "warn")
	require.NoError(t, err)

	l.Info("dropped below level")
	l.Warn("Environment variable too long")
	_ = l.Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	content := string(data)

	assert.NotContains(t, content, "dropped below level")
	assert.Contains(t, content, "Environment variable too long")
	assert.Contains(t, content, `"timestamp"`)
}

func TestInitFileLogger_EmptyPath(t *testing.T) {
	_, err := initFileLogger("", "info")
	assert.Error(t, err)
}
