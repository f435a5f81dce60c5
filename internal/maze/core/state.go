package core

// GameState is the mutable puzzle state owned by an Engine.
type GameState struct {
	Grid         *Grid
	Emitters     []Emitter
	Targets      []Target
	PlacedPieces map[Coord]CellKind // Authoritative record of player cells
	Moves        int
	LevelID      int
	IsComplete   bool
}

// NewState builds the initial state for a level: an empty grid with walls
// stamped in, fresh targets and zero moves.
func NewState(def *LevelDefinition) *GameState {
	grid := NewGrid(def.Size())
	for _, w := range def.Walls {
		grid.Set(w, Wall)
	}

	targets := make([]Target, len(def.Targets))
	for i, t := range def.Targets {
		targets[i] = Target{Pos: t.Pos, RequiredColor: t.RequiredColor}
	}

	return &GameState{
		Grid:         grid,
		Emitters:     append([]Emitter(nil), def.Emitters...),
		Targets:      targets,
		PlacedPieces: make(map[Coord]CellKind),
		LevelID:      def.ID,
	}
}

// AllTargetsHit reports whether every target is lit. True for no targets.
func (s *GameState) AllTargetsHit() bool {
	for _, t := range s.Targets {
		if !t.IsHit {
			return false
		}
	}
	return true
}

// EmitterView is the wire form of an emitter.
type EmitterView struct {
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Direction string    `json:"direction"`
	Color     BeamColor `json:"color"`
}

// TargetView is the wire form of a target.
type TargetView struct {
	X             int       `json:"x"`
	Y             int       `json:"y"`
	RequiredColor BeamColor `json:"required_color"`
	IsHit         bool      `json:"is_hit"`
}

// Snapshot is the serializable view of a GameState that front ends consume.
type Snapshot struct {
	Grid         [][]string        `json:"grid"`
	Emitters     []EmitterView     `json:"emitters"`
	Targets      []TargetView      `json:"targets"`
	PlacedPieces map[string]string `json:"placed_pieces"`
	Moves        int               `json:"moves"`
	LevelID      int               `json:"level_id"`
	IsComplete   bool              `json:"is_complete"`
}

// Snapshot returns the wire view of the state.
func (s *GameState) Snapshot() Snapshot {
	emitters := make([]EmitterView, len(s.Emitters))
	for i, e := range s.Emitters {
		emitters[i] = EmitterView{X: e.Pos.X, Y: e.Pos.Y, Direction: e.Direction.String(), Color: e.Color}
	}

	targets := make([]TargetView, len(s.Targets))
	for i, t := range s.Targets {
		targets[i] = TargetView{X: t.Pos.X, Y: t.Pos.Y, RequiredColor: t.RequiredColor, IsHit: t.IsHit}
	}

	placed := make(map[string]string, len(s.PlacedPieces))
	for c, k := range s.PlacedPieces {
		placed[c.Key()] = k.String()
	}

	return Snapshot{
		Grid:         s.Grid.Rows(),
		Emitters:     emitters,
		Targets:      targets,
		PlacedPieces: placed,
		Moves:        s.Moves,
		LevelID:      s.LevelID,
		IsComplete:   s.IsComplete,
	}
}
