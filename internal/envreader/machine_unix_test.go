//go:build linux || freebsd || netbsd || openbsd || dragonfly

package envreader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeEnvFile(t *testing.T, content string) *MachineReader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "environment")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r := NewMachineReader(zaptest.NewLogger(t))
	r.source = path
	return r
}

func TestMachineReader_Lookup(t *testing.T) {
	r := writeEnvFile(t, "PATH=\"/usr/local/bin:/usr/bin:/bin\"\nLANG=en_US.UTF-8\n")

	tests := []struct {
		name   string
		lookup string
		want   string
		wantOK bool
	}{
		{"exact name", "PATH", "/usr/local/bin:/usr/bin:/bin", true},
		{"case-insensitive name", "Path", "/usr/local/bin:/usr/bin:/bin", true},
		{"unquoted value", "LANG", "en_US.UTF-8", true},
		{"missing variable", "JAVA_HOME", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := r.Lookup(tt.lookup)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMachineReader_ExactMatchWins(t *testing.T) {
	r := writeEnvFile(t, "PATH=/upper\nPath=/mixed\n")

	got, ok, err := r.Lookup("Path")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/mixed", got)
}

func TestMachineReader_LongValue(t *testing.T) {
	long := strings.Repeat("A", 5000)
	r := writeEnvFile(t, "PATH="+long+"\n")

	got, ok, err := r.Lookup("Path")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, got, 5000)
}

func TestMachineReader_MissingFile(t *testing.T) {
	r := NewMachineReader(zaptest.NewLogger(t))
	r.source = filepath.Join(t.TempDir(), "does-not-exist")

	got, ok, err := r.Lookup("Path")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestMachineReader_Source(t *testing.T) {
	r := NewMachineReader(nil)
	assert.Equal(t, "/etc/environment", r.Source())
}
