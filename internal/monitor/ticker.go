package monitor

import (
	"sync"
	"time"
)

// Ticker is a Trigger backed by time.Ticker
type Ticker struct {
	mu     sync.Mutex
	ticker *time.Ticker
}

// NewTicker creates a stopped ticker
func NewTicker() *Ticker {
	return &Ticker{}
}

// Start begins firing every interval. Restarting resets the period.
func (t *Ticker) Start(interval time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ticker != nil {
		t.ticker.Reset(interval)
		return
	}
	t.ticker = time.NewTicker(interval)
}

// C returns the firing channel, nil before Start
func (t *Ticker) C() <-chan time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ticker == nil {
		return nil
	}
	return t.ticker.C
}

// Stop halts the ticker
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ticker != nil {
		t.ticker.Stop()
	}
}
