// Package session gives every player their own game engine.
// A Session serializes access to its engine; a Manager tracks live sessions
// and expires idle ones.
package session

import (
	"sync"
	"time"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
)

// ID uniquely identifies a session.
type ID string

// Result is the outcome of one player action together with the refreshed
// board: light paths, completion and stars.
type Result struct {
	Success    bool              `json:"success"`
	Error      string            `json:"error,omitempty"`
	State      core.Snapshot     `json:"game_state"`
	LightPaths []core.PathRecord `json:"light_paths"`
	IsComplete bool              `json:"is_complete"`
	Moves      int               `json:"moves"`
	Stars      int               `json:"stars"`
}

// Session owns one engine. All engine access goes through Do.
type Session struct {
	id      ID
	levelID int
	created time.Time
	clock   func() time.Time

	mu       sync.Mutex
	engine   *core.Engine
	lastUsed time.Time

	done     chan struct{}
	doneOnce sync.Once
}

func newSession(id ID, def core.LevelDefinition, clock func() time.Time) *Session {
	now := clock()
	engine := core.NewEngine()
	engine.StartNewGame(def)
	return &Session{
		id:       id,
		levelID:  def.ID,
		created:  now,
		clock:    clock,
		engine:   engine,
		lastUsed: now,
		done:     make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// LevelID returns the level the session was started with.
func (s *Session) LevelID() int {
	return s.levelID
}

// LastUsed returns the time of the most recent Do call.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Do runs fn with exclusive access to the session's engine.
// fn must not retain the engine after it returns.
func (s *Session) Do(fn func(e *core.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = s.clock()
	return fn(s.engine)
}

// Act performs one action and recomputes the board, in the order a client
// expects: action, light paths, victory, stars.
func (s *Session) Act(a core.Action) Result {
	var res Result
	_ = s.Do(func(e *core.Engine) error {
		res = act(e, a)
		return nil
	})
	return res
}

func act(e *core.Engine, a core.Action) Result {
	var res Result
	if err := e.Apply(a); err != nil {
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	refresh(e, &res)
	return res
}

func refresh(e *core.Engine, res *Result) {
	res.LightPaths = e.CalculateLightPaths()
	res.IsComplete = e.CheckVictory()
	res.Moves = e.Moves()
	if res.IsComplete {
		res.Stars = e.CalculateStars()
	}
	res.State, _ = e.Snapshot()
}

// Refresh traces the current board without performing an action.
func (s *Session) Refresh() Result {
	res := Result{Success: true}
	_ = s.Do(func(e *core.Engine) error {
		refresh(e, &res)
		return nil
	})
	return res
}

// Reset restarts the session's level.
func (s *Session) Reset() core.Snapshot {
	var snap core.Snapshot
	_ = s.Do(func(e *core.Engine) error {
		e.Reset()
		snap, _ = e.Snapshot()
		return nil
	})
	return snap
}

// Hint returns the engine's hint for the current board.
func (s *Session) Hint() (string, bool) {
	var (
		hint string
		ok   bool
	)
	_ = s.Do(func(e *core.Engine) error {
		e.CalculateLightPaths()
		hint, ok = e.GetHint()
		return nil
	})
	return hint, ok
}

// Done returns a channel that closes when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// close marks the session as done. Safe to call multiple times.
func (s *Session) close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}
