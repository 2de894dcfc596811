//go:build linux || freebsd || netbsd || openbsd || dragonfly

package envreader

import (
	"fmt"
	"os"
	"strings"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"
)

// defaultSource is the system-wide environment file read by pam_env
const defaultSource = "/etc/environment"

// Lookup reads name from the system environment file. Names are matched
// case-insensitively, an exact match wins.
func (r *MachineReader) Lookup(name string) (string, bool, error) {
	f, err := os.Open(r.source)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debug("Machine environment file not found", zap.String("source", r.source))
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to open %s: %w", r.source, err)
	}
	defer f.Close()

	env, err := gotenv.StrictParse(f)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse %s: %w", r.source, err)
	}

	if value, ok := env[name]; ok {
		return value, true, nil
	}
	for key, value := range env {
		if strings.EqualFold(key, name) {
			return value, true, nil
		}
	}

	return "", false, nil
}
