package monitor

import (
	"fmt"
	"unicode/utf16"
)

const (
	// VariableName is the machine-scoped variable being watched
	VariableName = "Path"
	// LengthThreshold is the longest value that does not raise a warning
	LengthThreshold = 2048
)

// Measurement is the result of a single read of a variable
type Measurement struct {
	Name    string
	Length  int
	Present bool
}

// Exceeds reports whether the variable is set and longer than LengthThreshold
func (m Measurement) Exceeds() bool {
	return m.Present && m.Length > LengthThreshold
}

// Measure reads name and counts its characters in UTF-16 code units,
// the unit the Windows environment size limits are expressed in.
func Measure(env EnvReader, name string) (Measurement, error) {
	value, ok, err := env.Lookup(name)
	if err != nil {
		return Measurement{Name: name}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if !ok {
		return Measurement{Name: name}, nil
	}

	return Measurement{
		Name:    name,
		Length:  len(utf16.Encode([]rune(value))),
		Present: true,
	}, nil
}

// AlertMessage formats the warning body for a value of the given length
func AlertMessage(length int) string {
	return fmt.Sprintf("%s variable length (%d) exceeds %d characters", VariableName, length, LengthThreshold)
}
