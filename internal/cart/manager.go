package cart

import (
	"sync"

	"cape/internal/notify"
)

// Manager hands out the cart session for each visitor, creating it on
// first touch from whatever the store remembers.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	store    Store
	notifier notify.Notifier
}

// NewManager creates a session manager over the given store.
func NewManager(store Store, notifier notify.Notifier) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
		notifier: notifier,
	}
}

// Get returns the session's cart, creating it if needed.
func (m *Manager) Get(sessionID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		return s
	}
	s := NewSession(sessionID, m.store, m.notifier)
	m.sessions[sessionID] = s
	return s
}

// Drop forgets a session's in-memory cart. The stored copy stays.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}
