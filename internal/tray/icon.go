package tray

import _ "embed"

var (
	//go:embed assets/icon.ico
	iconICO []byte

	//go:embed assets/icon.png
	iconPNG []byte
)
