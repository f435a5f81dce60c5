// Package core provides the Mirror Maze game engine: the grid model, the
// beam tracer, piece placement rules, victory and star scoring.
// This package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"strings"
)

// Direction is a step vector for a beam.
// Up decreases Y, Down increases Y (screen coordinates).
type Direction struct {
	DX int
	DY int
}

// Axis-aligned directions. Emitters always use one of these.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// IsZero reports whether the vector has no length.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Rotate90 returns the direction turned a quarter turn: (dx,dy) -> (-dy,dx).
func (d Direction) Rotate90() Direction {
	return Direction{DX: -d.DY, DY: d.DX}
}

// String returns the level-file name of an axis-aligned direction,
// or the raw vector for anything else.
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// ParseDirection converts a direction name to a Direction.
// Returns false if the name is not recognized.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UP", "U":
		return Up, true
	case "DOWN", "D":
		return Down, true
	case "LEFT", "L":
		return Left, true
	case "RIGHT", "R":
		return Right, true
	default:
		return Direction{}, false
	}
}

// BeamColor is the colour carried by a beam or required by a target.
// It is a flat tag set; colours are never mixed at runtime.
type BeamColor uint8

const (
	White BeamColor = iota
	Red
	Green
	Blue
	Yellow
	Cyan
	Magenta
)

// String returns the lowercase wire name of a colour.
func (c BeamColor) String() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Cyan:
		return "cyan"
	case Magenta:
		return "magenta"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c BeamColor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *BeamColor) UnmarshalText(text []byte) error {
	parsed, ok := ParseBeamColor(string(text))
	if !ok {
		return fmt.Errorf("unknown beam color %q", string(text))
	}
	*c = parsed
	return nil
}

// ParseBeamColor converts a colour name to a BeamColor. Case-insensitive.
func ParseBeamColor(s string) (BeamColor, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllBeamColors() {
		if c.String() == name {
			return c, true
		}
	}
	return White, false
}

// AllBeamColors returns every colour in declaration order.
func AllBeamColors() []BeamColor {
	return []BeamColor{White, Red, Green, Blue, Yellow, Cyan, Magenta}
}

// CellKind is the content of a single grid cell.
type CellKind uint8

const (
	Empty CellKind = iota
	Wall
	MirrorBackslash    // "\"
	MirrorForwardslash // "/"
	Splitter
	FilterRed
	FilterGreen
	FilterBlue
	Prism
)

// String returns the wire tag of the cell kind.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case MirrorBackslash:
		return "mirror_left"
	case MirrorForwardslash:
		return "mirror_right"
	case Splitter:
		return "splitter"
	case FilterRed:
		return "filter_red"
	case FilterGreen:
		return "filter_green"
	case FilterBlue:
		return "filter_blue"
	case Prism:
		return "prism"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsMirror reports whether the kind is one of the two mirror orientations.
func (k CellKind) IsMirror() bool {
	return k == MirrorBackslash || k == MirrorForwardslash
}

// FilterColor returns the colour a filter lets through.
// The second value is false for non-filter kinds.
func (k CellKind) FilterColor() (BeamColor, bool) {
	switch k {
	case FilterRed:
		return Red, true
	case FilterGreen:
		return Green, true
	case FilterBlue:
		return Blue, true
	default:
		return White, false
	}
}

// ParseCellKind converts a wire tag into a CellKind.
func ParseCellKind(s string) (CellKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty":
		return Empty, true
	case "wall":
		return Wall, true
	case "mirror_left":
		return MirrorBackslash, true
	case "mirror_right":
		return MirrorForwardslash, true
	case "splitter":
		return Splitter, true
	case "filter_red":
		return FilterRed, true
	case "filter_green":
		return FilterGreen, true
	case "filter_blue":
		return FilterBlue, true
	case "prism":
		return Prism, true
	default:
		return Empty, false
	}
}

// ParsePiece converts a piece-type name into a kind the player may place.
// Empty and Wall are cell kinds but never pieces.
func ParsePiece(s string) (CellKind, bool) {
	k, ok := ParseCellKind(s)
	if !ok || k == Empty || k == Wall {
		return Empty, false
	}
	return k, true
}

// PieceKinds returns every placeable kind.
func PieceKinds() []CellKind {
	return []CellKind{MirrorBackslash, MirrorForwardslash, Splitter, FilterRed, FilterGreen, FilterBlue, Prism}
}
