package tray

import (
	"errors"
	"sync"

	"fyne.io/systray"
	"github.com/username/environment-monitor/internal/monitor"
	"go.uber.org/zap"
)

// ErrNoIcon is returned by Show when no icon image is available
var ErrNoIcon = errors.New("tray icon image is empty")

// Notifier displays transient notifications
type Notifier interface {
	Notify(n monitor.Notification) error
}

// Tray is the notification area icon backed by fyne.io/systray
type Tray struct {
	icon      []byte
	notifier  Notifier
	logger    *zap.Logger
	closeOnce sync.Once
}

// New creates a tray presence using the embedded application icon
func New(notifier Notifier, logger *zap.Logger) *Tray {
	return &Tray{
		icon:     Icon(),
		notifier: notifier,
		logger:   logger,
	}
}

// Run starts the UI event loop and blocks until Quit. onReady is called
// once the tray is ready; an error from it quits the loop and is returned.
func (t *Tray) Run(onReady func() error) error {
	readyErr := make(chan error, 1)

	systray.Run(func() {
		if err := onReady(); err != nil {
			readyErr <- err
			systray.Quit()
		}
	}, func() {
		t.logger.Info("System tray exited")
	})

	select {
	case err := <-readyErr:
		return err
	default:
		return nil
	}
}

// Show sets the icon and tooltip
func (t *Tray) Show(tooltip string) error {
	if len(t.icon) == 0 {
		return ErrNoIcon
	}
	systray.SetIcon(t.icon)
	systray.SetTooltip(tooltip)
	return nil
}

// AddMenuItem appends an entry to the context menu
func (t *Tray) AddMenuItem(title, tooltip string) monitor.MenuItem {
	return &menuItem{item: systray.AddMenuItem(title, tooltip)}
}

// Notify shows a notification next to the icon
func (t *Tray) Notify(n monitor.Notification) error {
	t.logger.Info("Notification",
		zap.String("title", n.Title),
		zap.String("message", n.Message),
		zap.Duration("duration", n.Duration))

	if t.notifier == nil {
		return nil
	}
	return t.notifier.Notify(n)
}

// Quit ends the event loop
func (t *Tray) Quit() {
	systray.Quit()
}

// Close removes the icon. Safe to call more than once.
func (t *Tray) Close() error {
	t.closeOnce.Do(func() {
		systray.Quit()
	})
	return nil
}

type menuItem struct {
	item *systray.MenuItem
}

func (m *menuItem) SetTitle(title string) {
	m.item.SetTitle(title)
}

func (m *menuItem) Clicked() <-chan struct{} {
	return m.item.ClickedCh
}
