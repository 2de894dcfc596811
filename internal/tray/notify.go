package tray

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// iconFile writes the PNG icon to the user cache directory so notification
// backends that only take a path can show it.
func iconFile(appName string) (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate cache directory: %w", err)
	}

	dir := filepath.Join(cacheDir, strings.ToLower(strings.ReplaceAll(appName, " ", "-")))
	path := filepath.Join(dir, "icon.png")

	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, iconPNG) {
		return path, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create icon directory: %w", err)
	}
	if err := os.WriteFile(path, iconPNG, 0o644); err != nil {
		return "", fmt.Errorf("failed to write icon: %w", err)
	}
	return path, nil
}
