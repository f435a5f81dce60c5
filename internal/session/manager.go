package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vovakirdan/mirror-maze/internal/maze/core"
)

// Config holds configuration for the manager.
type Config struct {
	IdleTimeout   time.Duration    // Sessions unused for longer are reaped
	CleanupPeriod time.Duration    // How often Run reaps idle sessions
	Clock         func() time.Time // Defaults to time.Now
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		IdleTimeout:   30 * time.Minute,
		CleanupPeriod: time.Minute,
	}
}

// Manager tracks active sessions.
// Thread-safe for concurrent access.
type Manager struct {
	config Config
	logger *log.Logger

	mu       sync.RWMutex
	sessions map[ID]*Session
}

// NewManager creates a new session manager. A nil logger uses the default logger.
func NewManager(cfg Config, logger *log.Logger) *Manager {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		config:   cfg,
		logger:   logger,
		sessions: make(map[ID]*Session),
	}
}

// Start creates a session playing the given level.
func (m *Manager) Start(def core.LevelDefinition) *Session {
	s := newSession(ID(uuid.NewString()), def, m.config.Clock)

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.logger.Info("session started", "session", s.id, "level", def.ID, "active", m.Count())
	return s
}

// Get retrieves a session by ID.
func (m *Manager) Get(id ID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Delete ends a session. Returns false if it did not exist.
func (m *Manager) Delete(id ID) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return false
	}
	s.close()
	m.logger.Info("session ended", "session", id, "level", s.LevelID())
	return true
}

// List returns all sessions ordered by creation time.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	list := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		list = append(list, s)
	}
	m.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if !list[i].created.Equal(list[j].created) {
			return list[i].created.Before(list[j].created)
		}
		return list[i].id < list[j].id
	})
	return list
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Reap ends every session idle for longer than maxIdle and returns how many were removed.
func (m *Manager) Reap(maxIdle time.Duration) int {
	now := m.config.Clock()

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if now.Sub(s.LastUsed()) > maxIdle {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.close()
		m.logger.Debug("session expired", "session", s.id, "level", s.LevelID())
	}
	return len(expired)
}

// Run reaps idle sessions every CleanupPeriod until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) {
	period := m.config.CleanupPeriod
	if period <= 0 {
		period = DefaultConfig().CleanupPeriod
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := m.Reap(m.config.IdleTimeout); n > 0 {
				m.logger.Info("reaped idle sessions", "count", n)
			}
		case <-ctx.Done():
			return
		}
	}
}
