//go:build windows

package envreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMachineReader_LookupPath(t *testing.T) {
	r := NewMachineReader(zaptest.NewLogger(t))

	got, ok, err := r.Lookup("Path")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, got)
	assert.NotContains(t, got, "%SystemRoot%")
}

func TestMachineReader_LookupMissing(t *testing.T) {
	r := NewMachineReader(zaptest.NewLogger(t))

	_, ok, err := r.Lookup("ENVIRONMENT_MONITOR_DOES_NOT_EXIST")
	require.NoError(t, err)
	assert.False(t, ok)
}
