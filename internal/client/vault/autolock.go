package vault

import (
	"sync"
	"time"
)

// AutoLock is the session-scoped idle countdown. Any user activity resets
// the single live timer; on expiry the injected lock function runs, which is
// the same path as the manual lock action. Only one timer exists per
// session, rearmed in place.
type AutoLock struct {
	mu      sync.Mutex
	timer   *time.Timer
	enabled bool
	timeout time.Duration
	lock    func()
}

// NewAutoLock returns a stopped countdown; Apply arms it from settings.
func NewAutoLock(lock func()) *AutoLock {
	return &AutoLock{lock: lock}
}

// Apply updates the countdown from settings and rearms it.
func (a *AutoLock) Apply(enabled bool, timeout time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
	a.timeout = timeout
	a.rearmLocked()
}

// Touch resets the countdown; call it on every user-activity event.
func (a *AutoLock) Touch() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rearmLocked()
}

// Stop disarms the countdown (on lock or session teardown).
func (a *AutoLock) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *AutoLock) rearmLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if !a.enabled || a.timeout <= 0 {
		return
	}
	a.timer = time.AfterFunc(a.timeout, a.lock)
}
