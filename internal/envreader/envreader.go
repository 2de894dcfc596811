// Package envreader reads environment variables from the machine-wide scope,
// as opposed to the current process or user.
package envreader

import (
	"errors"

	"go.uber.org/zap"
)

// ErrUnsupported is returned when the platform has no machine scope
var ErrUnsupported = errors.New("machine environment scope is not supported on this platform")

// MachineReader reads machine-scoped variables. It never writes.
type MachineReader struct {
	source string
	logger *zap.Logger
}

// NewMachineReader creates a reader over the platform's machine scope
func NewMachineReader(logger *zap.Logger) *MachineReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MachineReader{
		source: defaultSource,
		logger: logger,
	}
}

// Source describes where values are read from
func (r *MachineReader) Source() string {
	return r.source
}
