package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager owns all live session states, keyed by the opaque id carried in
// the session cookie. Idle sessions are dropped lazily on access; state
// is process-local and vanishes with the process.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*State
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]*State),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GetOrCreate resolves the state for id, creating a fresh one when the id
// is unknown, expired, or empty. The returned state's ID is what the
// cookie must carry.
func (m *Manager) GetOrCreate(id string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)

	if id != "" {
		if st, ok := m.sessions[id]; ok {
			st.touch(now)
			return st
		}
	}

	st := newState(uuid.NewString(), now)
	m.sessions[st.ID] = st
	return st
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// sweep drops sessions idle past the ttl. Caller holds m.mu.
func (m *Manager) sweep(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, st := range m.sessions {
		st.mu.Lock()
		idle := now.Sub(st.lastSeen)
		st.mu.Unlock()
		if idle > m.ttl {
			delete(m.sessions, id)
		}
	}
}
