// internal/core/find/manager.go

// Package find turns a search term into the ordered range list the Search
// selection mode consumes. It stands in for the external search engines;
// the core only ever sees the finished ranges.
package find

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/logger"
	"github.com/bethropolis/coral/internal/types"
)

// Manager caches the last search and its matches for one buffer version.
type Manager struct {
	mutex       sync.RWMutex
	lastTerm    string
	lastRegex   *regexp.Regexp
	lastVersion int
	matches     []types.CharRange
}

// NewManager creates a find manager.
func NewManager() *Manager {
	return &Manager{lastVersion: -1}
}

// Search compiles term (literally when literal is set, as a regular
// expression otherwise) and returns all match ranges in document order.
func (m *Manager) Search(buf *buffer.Buffer, term string, literal bool) ([]types.CharRange, error) {
	if term == "" {
		return nil, fmt.Errorf("empty search term")
	}
	pattern := term
	if literal {
		pattern = regexp.QuoteMeta(term)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", term, err)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.lastTerm = term
	m.lastRegex = re
	m.matches = matchRanges(buf, re)
	m.lastVersion = buf.Version()
	logger.Debugf("find: %d match(es) for %q", len(m.matches), term)
	return m.matches, nil
}

// Matches returns the cached matches, re-running the search when the
// buffer has changed since.
func (m *Manager) Matches(buf *buffer.Buffer) []types.CharRange {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.lastRegex == nil {
		return nil
	}
	if buf.Version() != m.lastVersion {
		m.matches = matchRanges(buf, m.lastRegex)
		m.lastVersion = buf.Version()
	}
	return m.matches
}

// LastTerm returns the most recent search term, for status display.
func (m *Manager) LastTerm() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.lastTerm
}

// Clear forgets the current search.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.lastTerm = ""
	m.lastRegex = nil
	m.matches = nil
	m.lastVersion = -1
}

func matchRanges(buf *buffer.Buffer, re *regexp.Regexp) []types.CharRange {
	var out []types.CharRange
	for _, m := range re.FindAllStringIndex(buf.Text(), -1) {
		if m[0] == m[1] {
			continue // Zero-width matches cannot be selected.
		}
		out = append(out, types.CharRange{
			Start: buf.ByteToChar(m[0]),
			End:   buf.ByteToChar(m[1]),
		})
	}
	return out
}
