//go:build windows

package tray

import (
	"time"

	toast "git.sr.ht/~jackmordaunt/go-toast"
	"github.com/username/environment-monitor/internal/monitor"
	"go.uber.org/zap"
)

// shortToastTime is roughly how long Windows shows a short toast
const shortToastTime = 7 * time.Second

type toastNotifier struct {
	appID    string
	iconPath string
}

// NewNotifier returns a Windows toast notifier
func NewNotifier(appName string, logger *zap.Logger) Notifier {
	iconPath, err := iconFile(appName)
	if err != nil {
		logger.Warn("Notification icon unavailable", zap.Error(err))
	}
	return &toastNotifier{
		appID:    appName,
		iconPath: iconPath,
	}
}

func (n *toastNotifier) Notify(msg monitor.Notification) error {
	notification := toast.Notification{
		AppID:    n.appID,
		Title:    msg.Title,
		Body:     msg.Message,
		Icon:     n.iconPath,
		Duration: toast.Short,
	}
	if longToast(msg.Duration) {
		notification.Duration = toast.Long
	}
	return notification.Push()
}

// longToast reports whether d needs the long toast. Windows only offers
// the two lengths.
func longToast(d time.Duration) bool {
	return d > shortToastTime
}
