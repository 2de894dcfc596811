//go:build windows

package tray

// Icon returns the tray image. The Windows notification area needs .ico data.
func Icon() []byte {
	return iconICO
}
