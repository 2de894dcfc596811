//go:build !windows && !linux && !freebsd && !netbsd && !openbsd && !dragonfly

package envreader

const defaultSource = ""

// Lookup always fails: there is no machine-wide environment store here.
func (r *MachineReader) Lookup(name string) (string, bool, error) {
	return "", false, ErrUnsupported
}
