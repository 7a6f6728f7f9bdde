// Package clipboard copies text to the system clipboard on a best-effort
// basis.
package clipboard

import (
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

var (
	mu       sync.Mutex
	writeAll = clipboard.WriteAll
)

// Write puts s on the system clipboard.
func Write(s string) error {
	mu.Lock()
	w := writeAll
	mu.Unlock()
	return w(s)
}

// Copy returns a command that writes s. When no system clipboard is
// available (e.g. over SSH) it falls back to the terminal's OSC 52 clipboard.
// Failures are logged, never reported.
func Copy(s string, logger *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		if err := Write(s); err != nil {
			if logger != nil {
				logger.Debug("system clipboard unavailable, using OSC 52", zap.Error(err))
			}
			return tea.SetClipboard(s)()
		}
		return nil
	}
}

// Swap replaces the clipboard writer and returns a func restoring the
// previous one. For tests.
func Swap(w func(string) error) (restore func()) {
	mu.Lock()
	prev := writeAll
	writeAll = w
	mu.Unlock()
	return func() {
		mu.Lock()
		writeAll = prev
		mu.Unlock()
	}
}
