package core

import "maps"

// Emitter is a fixed light source placed by the level.
// The zero value of Disabled is a lit emitter.
type Emitter struct {
	Pos       Coord
	Direction Direction
	Color     BeamColor
	Disabled  bool
}

// Target is a cell that must be lit with a specific colour.
// IsHit is derived state, recomputed on every light-path calculation.
type Target struct {
	Pos           Coord
	RequiredColor BeamColor
	IsHit         bool
}

// LevelDefinition is the immutable input the engine is started with.
// The engine trusts it; validation belongs to whoever produces it.
type LevelDefinition struct {
	ID              int
	Name            string
	Difficulty      string
	Description     string
	GridSize        int
	MinMoves        int // Par used for star scoring
	Walls           []Coord
	Emitters        []Emitter
	Targets         []Target
	AvailablePieces map[string]int // Piece tag -> count; absent tags are unlimited
}

// Size returns the grid side length, falling back to DefaultGridSize.
func (l *LevelDefinition) Size() int {
	if l.GridSize <= 0 {
		return DefaultGridSize
	}
	return l.GridSize
}

// Clone returns a deep copy of the definition.
func (l *LevelDefinition) Clone() *LevelDefinition {
	clone := *l
	clone.Walls = append([]Coord(nil), l.Walls...)
	clone.Emitters = append([]Emitter(nil), l.Emitters...)
	clone.Targets = append([]Target(nil), l.Targets...)
	clone.AvailablePieces = maps.Clone(l.AvailablePieces)
	return &clone
}
