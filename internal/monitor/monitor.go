package monitor

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultInterval is how often the variable is checked
	DefaultInterval = 5 * time.Minute
	// DefaultAlertDuration is the requested display time of a warning
	DefaultAlertDuration = 10 * time.Second
	// DefaultApplicationName is used for the tooltip and notification titles
	DefaultApplicationName = "Environment Monitor"
)

// Menu labels
const (
	LabelExit     = "Exit"
	LabelMute     = "Mute"
	LabelActivate = "Activate"
)

// ErrAlreadyStarted is returned by Start when the monitor is already running
var ErrAlreadyStarted = errors.New("monitor already started")

// Notification is a transient warning anchored to the tray icon
type Notification struct {
	Title    string
	Message  string
	Duration time.Duration
}

// MenuItem is a single context menu entry
type MenuItem interface {
	SetTitle(title string)
	Clicked() <-chan struct{}
}

// TrayPresence is the persistent notification area icon
type TrayPresence interface {
	// Show sets the icon image and tooltip and makes the icon visible
	Show(tooltip string) error
	AddMenuItem(title, tooltip string) MenuItem
	Notify(n Notification) error
	// Quit ends the UI event loop
	Quit()
	// Close releases the icon
	Close() error
}

// Trigger fires on a fixed interval
type Trigger interface {
	Start(interval time.Duration)
	C() <-chan time.Time
	Stop()
}

// EnvReader reads machine-scoped environment variables
type EnvReader interface {
	Lookup(name string) (value string, ok bool, err error)
}

// Monitor watches the machine Path variable and raises tray warnings
// when it grows past LengthThreshold.
//
// All handlers (trigger firings and menu clicks) run on one dispatch
// goroutine, so muted is never touched concurrently.
type Monitor struct {
	interval      time.Duration
	alertDuration time.Duration
	appName       string

	tray    TrayPresence
	trigger Trigger
	env     EnvReader
	logger  *zap.Logger

	muted   bool
	started bool

	done        chan struct{}
	wg          sync.WaitGroup
	disposeOnce sync.Once
}

// New creates a stopped monitor
func New(interval, alertDuration time.Duration, tray TrayPresence, trigger Trigger, env EnvReader, logger *zap.Logger) (*Monitor, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("monitor interval must be positive, got %s", interval)
	}
	if alertDuration <= 0 {
		return nil, fmt.Errorf("alert duration must be positive, got %s", alertDuration)
	}
	if tray == nil {
		return nil, errors.New("tray presence is required")
	}
	if trigger == nil {
		return nil, errors.New("trigger is required")
	}
	if env == nil {
		return nil, errors.New("environment reader is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Monitor{
		interval:      interval,
		alertDuration: alertDuration,
		appName:       DefaultApplicationName,
		tray:          tray,
		trigger:       trigger,
		env:           env,
		logger:        logger,
		done:          make(chan struct{}),
	}, nil
}

// Start shows the tray icon with its context menu and starts polling
func (m *Monitor) Start() error {
	if m.started {
		return ErrAlreadyStarted
	}

	if err := m.tray.Show(m.appName); err != nil {
		return fmt.Errorf("failed to show tray icon: %w", err)
	}

	exitItem := m.tray.AddMenuItem(LabelExit, "Exit the application")
	muteItem := m.tray.AddMenuItem(LabelMute, "Toggle warnings")

	m.trigger.Start(m.interval)
	m.started = true

	m.wg.Add(1)
	go m.run(exitItem, muteItem)

	m.logger.Info("Monitor started",
		zap.String("variable", VariableName),
		zap.Duration("interval", m.interval),
		zap.Duration("alert_duration", m.alertDuration),
		zap.Int("threshold", LengthThreshold))

	return nil
}

// Dispose stops the trigger and releases the tray icon. No firing is
// handled once it returns.
func (m *Monitor) Dispose() error {
	var err error
	m.disposeOnce.Do(func() {
		close(m.done)
		m.wg.Wait()

		m.trigger.Stop()
		if closeErr := m.tray.Close(); closeErr != nil {
			err = fmt.Errorf("failed to release tray icon: %w", closeErr)
		}

		m.logger.Info("Monitor stopped")
	})
	return err
}

func (m *Monitor) run(exitItem, muteItem MenuItem) {
	defer m.wg.Done()

	for {
		select {
		case <-m.done:
			return

		case <-m.trigger.C():
			m.onTick()

		case <-muteItem.Clicked():
			m.toggleMute(muteItem)

		case <-exitItem.Clicked():
			m.logger.Info("Exit clicked from tray")
			m.tray.Quit()
			return
		}
	}
}

func (m *Monitor) onTick() {
	if m.muted {
		return
	}

	measurement, err := Measure(m.env, VariableName)
	if err != nil {
		m.logger.Debug("Failed to read environment variable",
			zap.String("variable", VariableName),
			zap.Error(err))
		return
	}

	if !measurement.Exceeds() {
		m.logger.Debug("Environment variable within limit",
			zap.String("variable", measurement.Name),
			zap.Bool("present", measurement.Present),
			zap.Int("length", measurement.Length))
		return
	}

	m.logger.Warn("Environment variable too long",
		zap.String("variable", measurement.Name),
		zap.Int("length", measurement.Length),
		zap.Int("threshold", LengthThreshold))

	n := Notification{
		Title:    m.appName,
		Message:  AlertMessage(measurement.Length),
		Duration: m.alertDuration,
	}
	if err := m.tray.Notify(n); err != nil {
		m.logger.Warn("Failed to show notification", zap.Error(err))
	}
}

// toggleMute flips the mute state. The label offers the opposite action.
func (m *Monitor) toggleMute(item MenuItem) {
	m.muted = !m.muted
	if m.muted {
		item.SetTitle(LabelActivate)
	} else {
		item.SetTitle(LabelMute)
	}
	m.logger.Info("Mute toggled from tray", zap.Bool("muted", m.muted))
}
