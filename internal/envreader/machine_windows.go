//go:build windows

package envreader

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sys/windows/registry"
)

const defaultSource = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`

// Lookup reads name from HKLM. REG_EXPAND_SZ values are expanded the same
// way the system expands them for new processes.
func (r *MachineReader) Lookup(name string) (string, bool, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, r.source, registry.QUERY_VALUE)
	if err != nil {
		return "", false, fmt.Errorf("failed to open machine environment key: %w", err)
	}
	defer key.Close()

	value, valueType, err := key.GetStringValue(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if valueType == registry.EXPAND_SZ {
		expanded, err := registry.ExpandString(value)
		if err != nil {
			r.logger.Debug("Failed to expand registry value, using raw value",
				zap.String("name", name),
				zap.Error(err))
			return value, true, nil
		}
		value = expanded
	}

	return value, true, nil
}
