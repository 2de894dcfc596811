//go:build !windows

package tray

import (
	"github.com/gen2brain/beeep"
	"github.com/username/environment-monitor/internal/monitor"
	"go.uber.org/zap"
)

type beeepNotifier struct {
	iconPath string
}

// NewNotifier returns a desktop notifier. Every notification is a warning,
// so it also sounds the system alert. Freedesktop servers pick their own
// display time.
func NewNotifier(appName string, logger *zap.Logger) Notifier {
	iconPath, err := iconFile(appName)
	if err != nil {
		logger.Warn("Notification icon unavailable", zap.Error(err))
	}
	return &beeepNotifier{iconPath: iconPath}
}

func (n *beeepNotifier) Notify(msg monitor.Notification) error {
	return beeep.Alert(msg.Title, msg.Message, n.iconPath)
}
