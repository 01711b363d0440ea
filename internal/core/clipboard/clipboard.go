// internal/core/clipboard/clipboard.go

// Package clipboard manages the text register used by copy/paste actions,
// optionally mirrored to the system clipboard.
package clipboard

import (
	sysclip "github.com/atotto/clipboard"

	"github.com/bethropolis/coral/internal/logger"
)

// Manager holds an internal register and, when enabled, keeps the system
// clipboard in sync. The internal register is authoritative: a headless or
// clipboard-less environment degrades to register-only operation instead of
// failing the edit.
type Manager struct {
	register  string
	useSystem bool
}

// NewManager creates a clipboard manager. useSystem enables mirroring to
// the system clipboard when one is available.
func NewManager(useSystem bool) *Manager {
	if useSystem && sysclip.Unsupported {
		logger.Warnf("clipboard: system clipboard unavailable, using internal register only")
		useSystem = false
	}
	return &Manager{useSystem: useSystem}
}

// Write stores text in the register and mirrors it to the system clipboard.
func (m *Manager) Write(text string) {
	m.register = text
	if !m.useSystem {
		return
	}
	if err := sysclip.WriteAll(text); err != nil {
		logger.Warnf("clipboard: system write failed: %v", err)
	}
}

// Read returns the register content, preferring the system clipboard when
// mirroring is on (another program may have replaced it).
func (m *Manager) Read() string {
	if m.useSystem {
		if text, err := sysclip.ReadAll(); err == nil && text != "" {
			return text
		}
	}
	return m.register
}
