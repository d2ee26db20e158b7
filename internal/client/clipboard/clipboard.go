// Package clipboard schedules the auto-clear of secrets copied to the system
// clipboard. The actual clipboard access happens on the backend; this side
// only remembers what was copied last and arms the countdown.
package clipboard

import (
	"context"
	"sync"
	"time"

	"github.com/vaultdesk/vaultdesk/internal/logging"
)

// Backend is the clipboard surface of the backend connection.
type Backend interface {
	CopyToClipboard(ctx context.Context, value string) error
	WipeClipboard(ctx context.Context, expected string) error
}

// Manager copies values and clears them after a delay. The wipe is
// compare-and-clear: if the user copied something else in the meantime, the
// clipboard is left alone. A new copy supersedes any pending wipe.
type Manager struct {
	backend Backend
	log     logging.Logger

	mu    sync.Mutex
	last  string
	timer *time.Timer
}

func NewManager(backend Backend, log logging.Logger) *Manager {
	return &Manager{backend: backend, log: log}
}

// Copy places value on the clipboard and arms the auto-clear countdown.
// delay <= 0 disables auto-clear for this copy.
func (m *Manager) Copy(ctx context.Context, value string, delay time.Duration) error {
	if err := m.backend.CopyToClipboard(ctx, value); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = value
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if delay > 0 {
		m.timer = time.AfterFunc(delay, func() { m.wipe(value) })
	}
	return nil
}

// WipeNow clears the last copied value immediately, cancelling any pending
// countdown. Called on lock so secrets never outlive the session.
func (m *Manager) WipeNow(ctx context.Context) {
	m.mu.Lock()
	last := m.last
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.last = ""
	m.mu.Unlock()

	if last == "" {
		return
	}
	if err := m.backend.WipeClipboard(ctx, last); err != nil {
		m.log.Warn(ctx, "clipboard wipe failed", "error", err)
	}
}

func (m *Manager) wipe(expected string) {
	m.mu.Lock()
	if m.last == expected {
		m.last = ""
	}
	m.timer = nil
	m.mu.Unlock()

	ctx := context.Background()
	if err := m.backend.WipeClipboard(ctx, expected); err != nil {
		m.log.Warn(ctx, "clipboard wipe failed", "error", err)
	}
}
