package levels

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
	"github.com/vovakirdan/mirror-maze/internal/maze/levels/formats"
)

// Grid size limits accepted for level files.
const (
	MinGridSize = 3
	MaxGridSize = 50
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a level definition is playable before it reaches
// the engine, which trusts its input.
// Checks:
//   - Grid size within [MinGridSize, MaxGridSize]
//   - Walls, emitters and targets inside the grid
//   - At least one emitter and one target, none on a wall
//   - Inventory names known pieces with non-negative counts
//   - Par is non-negative
func Validate(def core.LevelDefinition) error {
	if err := validateSize(def); err != nil {
		return err
	}
	if err := validatePositions(def); err != nil {
		return err
	}
	if err := validateInventory(def); err != nil {
		return err
	}

	if def.MinMoves < 0 {
		return ValidationError{
			Code:    "NEGATIVE_PAR",
			Message: fmt.Sprintf("min_moves is %d", def.MinMoves),
		}
	}

	return nil
}

func validateSize(def core.LevelDefinition) error {
	n := def.Size()
	if n < MinGridSize || n > MaxGridSize {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("grid size %d outside [%d, %d]", n, MinGridSize, MaxGridSize),
		}
	}
	return nil
}

func validatePositions(def core.LevelDefinition) error {
	g := core.NewGrid(def.Size())

	walls := make(map[core.Coord]bool, len(def.Walls))
	for _, w := range def.Walls {
		if !g.InBounds(w) {
			return outOfBounds("wall", w)
		}
		walls[w] = true
	}

	if len(def.Emitters) == 0 {
		return ValidationError{Code: "NO_EMITTERS", Message: "level has no emitters"}
	}
	for _, e := range def.Emitters {
		if !g.InBounds(e.Pos) {
			return outOfBounds("emitter", e.Pos)
		}
		if walls[e.Pos] {
			return onWall("emitter", e.Pos)
		}
	}

	if len(def.Targets) == 0 {
		return ValidationError{Code: "NO_TARGETS", Message: "level has no targets"}
	}
	for _, t := range def.Targets {
		if !g.InBounds(t.Pos) {
			return outOfBounds("target", t.Pos)
		}
		if walls[t.Pos] {
			return onWall("target", t.Pos)
		}
	}

	return nil
}

func validateInventory(def core.LevelDefinition) error {
	for _, name := range formats.PieceNames(def) {
		count := def.AvailablePieces[name]
		if _, ok := core.ParsePiece(name); !ok {
			return ValidationError{
				Code:    "UNKNOWN_PIECE",
				Message: fmt.Sprintf("available_pieces names unknown piece %q (known: %s)", name, knownPieces()),
			}
		}
		if count < 0 {
			return ValidationError{
				Code:    "NEGATIVE_COUNT",
				Message: fmt.Sprintf("available_pieces[%s] is %d", name, count),
			}
		}
	}
	return nil
}

func knownPieces() string {
	names := make([]string, 0, len(core.PieceKinds()))
	for _, k := range core.PieceKinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func outOfBounds(what string, c core.Coord) error {
	return ValidationError{
		Code:    "OUT_OF_BOUNDS",
		Message: fmt.Sprintf("%s at %v is outside the grid", what, c),
	}
}

func onWall(what string, c core.Coord) error {
	return ValidationError{
		Code:    "ON_WALL",
		Message: fmt.Sprintf("%s at %v overlaps a wall", what, c),
	}
}
