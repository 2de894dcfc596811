//go:build !windows

package tray

// Icon returns the tray image
func Icon() []byte {
	return iconPNG
}
