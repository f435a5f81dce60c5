package core

import (
	"errors"
	"fmt"
	"strings"
)

// ActionType names a player action.
type ActionType string

const (
	ActionPlace  ActionType = "place"
	ActionRotate ActionType = "rotate"
	ActionRemove ActionType = "remove"
)

// Action is one player move. Piece is only read by place.
// Rotation is accepted for compatibility and never consulted:
// mirrors only toggle between their two orientations.
type Action struct {
	Type     ActionType
	X        int
	Y        int
	Piece    string
	Rotation int
}

// Reasons an action can fail. The state is unchanged whenever one is returned.
var (
	ErrNoActiveGame  = errors.New("no active game")
	ErrUnknownAction = errors.New("unknown action")
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrCellOccupied  = errors.New("cell is not empty")
	ErrUnknownPiece  = errors.New("unknown piece type")
	ErrPieceDepleted = errors.New("no pieces of this type left")
	ErrNotRotatable  = errors.New("piece cannot be rotated")
	ErrNoPiece       = errors.New("no placed piece at position")
)

const (
	hintFallback = "Check if all mirrors are positioned correctly"
)

// Engine owns one game at a time. It performs no locking: callers
// sharing an Engine across goroutines must serialize access.
type Engine struct {
	level     *LevelDefinition
	state     *GameState
	inventory map[string]int
	par       int

	// taken records which inventory entry each placed piece came from,
	// so a mirror rotated after placement refunds the entry it consumed.
	taken map[Coord]CellKind
}

// NewEngine creates an engine with no active game.
func NewEngine() *Engine {
	return &Engine{}
}

// StartNewGame discards any current game and starts the given level.
func (e *Engine) StartNewGame(def LevelDefinition) *GameState {
	e.level = def.Clone()
	e.state = NewState(e.level)
	e.par = def.MinMoves
	e.taken = make(map[Coord]CellKind)
	e.inventory = make(map[string]int, len(def.AvailablePieces))
	for name, count := range def.AvailablePieces {
		if k, ok := ParsePiece(name); ok {
			name = k.String()
		}
		e.inventory[name] = count
	}
	return e.state
}

// Reset restarts the current level from its definition.
// Returns nil if no level has been started.
func (e *Engine) Reset() *GameState {
	if e.level == nil {
		return nil
	}
	return e.StartNewGame(*e.level)
}

// State returns the live game state, or nil if no game is active.
func (e *Engine) State() *GameState {
	return e.state
}

// Snapshot returns the wire view of the current state.
// The second value is false when no game is active.
func (e *Engine) Snapshot() (Snapshot, bool) {
	if e.state == nil {
		return Snapshot{}, false
	}
	return e.state.Snapshot(), true
}

// Inventory returns a copy of the remaining piece counts.
func (e *Engine) Inventory() map[string]int {
	inv := make(map[string]int, len(e.inventory))
	for k, v := range e.inventory {
		inv[k] = v
	}
	return inv
}

// Par returns the minimum-move value of the current level.
func (e *Engine) Par() int {
	return e.par
}

// Moves returns the move counter, 0 when no game is active.
func (e *Engine) Moves() int {
	if e.state == nil {
		return 0
	}
	return e.state.Moves
}

// PerformAction executes a place, rotate or remove action and reports success.
func (e *Engine) PerformAction(action string, x, y int, pieceType string, rotation int) bool {
	return e.Apply(Action{
		Type:     ActionType(strings.ToLower(action)),
		X:        x,
		Y:        y,
		Piece:    pieceType,
		Rotation: rotation,
	}) == nil
}

// Apply executes an action and returns why it failed, if it did.
func (e *Engine) Apply(a Action) error {
	if e.state == nil {
		return ErrNoActiveGame
	}

	c := C(a.X, a.Y)
	switch a.Type {
	case ActionPlace:
		return e.place(c, a.Piece)
	case ActionRotate:
		return e.rotate(c)
	case ActionRemove:
		return e.remove(c)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

func (e *Engine) place(c Coord, piece string) error {
	s := e.state
	if !s.Grid.InBounds(c) {
		return fmt.Errorf("place %v: %w", c, ErrOutOfBounds)
	}
	if s.Grid.Get(c) != Empty {
		return fmt.Errorf("place %v: %w", c, ErrCellOccupied)
	}
	kind, ok := ParsePiece(piece)
	if !ok {
		return fmt.Errorf("place %q: %w", piece, ErrUnknownPiece)
	}

	name := kind.String()
	if left, tracked := e.inventory[name]; tracked {
		if left <= 0 {
			return fmt.Errorf("place %s: %w", name, ErrPieceDepleted)
		}
		e.inventory[name] = left - 1
	}

	s.Grid.Set(c, kind)
	s.PlacedPieces[c] = kind
	e.taken[c] = kind
	s.Moves++
	return nil
}

func (e *Engine) rotate(c Coord) error {
	s := e.state
	if !s.Grid.InBounds(c) {
		return fmt.Errorf("rotate %v: %w", c, ErrOutOfBounds)
	}

	cur := s.Grid.Get(c)
	if !cur.IsMirror() {
		return fmt.Errorf("rotate %v: %w", c, ErrNotRotatable)
	}
	next := MirrorBackslash
	if cur == MirrorBackslash {
		next = MirrorForwardslash
	}

	s.Grid.Set(c, next)
	s.PlacedPieces[c] = next
	s.Moves++
	return nil
}

func (e *Engine) remove(c Coord) error {
	s := e.state
	if !s.Grid.InBounds(c) {
		return fmt.Errorf("remove %v: %w", c, ErrOutOfBounds)
	}
	kind, ok := s.PlacedPieces[c]
	if !ok {
		return fmt.Errorf("remove %v: %w", c, ErrNoPiece)
	}

	if src, ok := e.taken[c]; ok {
		kind = src
	}
	if left, tracked := e.inventory[kind.String()]; tracked {
		e.inventory[kind.String()] = left + 1
	}

	s.Grid.Set(c, Empty)
	delete(s.PlacedPieces, c)
	delete(e.taken, c)
	s.Moves++
	return nil
}

// CalculateLightPaths traces every active emitter and recomputes which
// targets are hit. A target is hit when any record whose colour equals the
// required colour passes over it.
func (e *Engine) CalculateLightPaths() []PathRecord {
	paths := []PathRecord{}
	if e.state == nil {
		return paths
	}

	s := e.state
	for _, em := range s.Emitters {
		if em.Disabled {
			continue
		}
		paths = append(paths, Trace(s.Grid, em.Pos, em.Direction, em.Color)...)
	}

	for i := range s.Targets {
		s.Targets[i].IsHit = false
	}
	for _, rec := range paths {
		for i := range s.Targets {
			t := &s.Targets[i]
			if !t.IsHit && rec.Color == t.RequiredColor && rec.Contains(t.Pos) {
				t.IsHit = true
			}
		}
	}
	s.IsComplete = s.AllTargetsHit()

	return paths
}

// CheckVictory reports whether every target is hit and records it on the state.
// It does not retrace; call CalculateLightPaths first.
func (e *Engine) CheckVictory() bool {
	if e.state == nil {
		return false
	}
	e.state.IsComplete = e.state.AllTargetsHit()
	return e.state.IsComplete
}

// CalculateStars scores a solved board from 1 to 3 by moves against par.
// Unsolved boards score 0.
func (e *Engine) CalculateStars() int {
	if !e.CheckVictory() {
		return 0
	}
	return StarsFor(e.state.Moves, e.par)
}

// StarsFor returns the star rating for a solution of moves against par.
// A par of zero or less rates every solution as on par.
func StarsFor(moves, par int) int {
	ratio := 1.0
	if par > 0 {
		ratio = float64(moves) / float64(par)
	}
	switch {
	case ratio <= 1.0:
		return 3
	case ratio <= 1.5:
		return 2
	default:
		return 1
	}
}

// GetHint points at the first unlit target. The second value is false when
// no game is active.
func (e *Engine) GetHint() (string, bool) {
	if e.state == nil {
		return "", false
	}
	for _, t := range e.state.Targets {
		if !t.IsHit {
			return fmt.Sprintf("Try to guide %s light to position (%d, %d)", t.RequiredColor, t.Pos.X, t.Pos.Y), true
		}
	}
	return hintFallback, true
}
