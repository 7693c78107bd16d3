package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"homework-planner/pkg/log"
)

// DefaultTickInterval is the planner's reminder resolution.
const DefaultTickInterval = time.Second

// Manager owns the per-user reminder sessions. One session per user: a new
// login replaces (and stops) the previous session, resetting fired-state.
type Manager struct {
	source   TaskSource
	loc      *time.Location
	interval time.Duration
	l        log.Logger

	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewManager creates a session Manager. A zero interval means
// DefaultTickInterval; a nil location means time.Local.
func NewManager(source TaskSource, loc *time.Location, interval time.Duration, l log.Logger) *Manager {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if loc == nil {
		loc = time.Local
	}
	return &Manager{
		source:   source,
		loc:      loc,
		interval: interval,
		l:        l,
		sessions: make(map[int64]*Session),
	}
}

// StartSession begins a fresh reminder session for the user, stopping any
// existing one first. The map swap is atomic: concurrent calls for the same
// user each displace exactly one session, so no loop is left running outside
// the map.
func (m *Manager) StartSession(ctx context.Context, userID int64) *Session {
	s := newSession(uuid.NewString(), userID, m.source, m.loc, m.interval, m.l)

	m.mu.Lock()
	prev := m.sessions[userID]
	m.sessions[userID] = s
	m.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}
	s.start(ctx)
	return s
}

// Get returns the user's active session, or nil.
func (m *Manager) Get(userID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[userID]
}

// StopSession tears down the user's session if one is active.
func (m *Manager) StopSession(userID int64) {
	m.mu.Lock()
	s := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()

	if s != nil {
		s.Stop()
	}
}

// StopAll tears down every active session; called on server shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[int64]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Stop()
	}
}
