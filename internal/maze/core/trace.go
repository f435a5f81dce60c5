package core

const (
	// MaxTraceDepth bounds splitter/prism recursion. Walks deeper than this produce nothing.
	MaxTraceDepth = 100

	// MaxTraceSegments bounds the number of walks one top-level trace may start.
	// Only boards whose splitters feed each other exponentially up to the
	// depth guard reach it; any trace that ends on its own stays well below.
	MaxTraceSegments = 1 << 20
)

// PathRecord is the traced output of one beam walk.
type PathRecord struct {
	Path  []Coord   `json:"path"`  // Visited cells in order, origin excluded
	Color BeamColor `json:"color"` // Colour when the walk stopped
	Start Coord     `json:"start"` // Cell the walk started from
	End   Coord     `json:"end"`   // Last visited cell, or Start when Path is empty
}

// Contains reports whether the record's path visits c.
func (r PathRecord) Contains(c Coord) bool {
	for _, p := range r.Path {
		if p == c {
			return true
		}
	}
	return false
}

// prismOffsets are the angular offsets applied to white light, in emission order.
var prismOffsets = []struct {
	color  BeamColor
	offset int
}{
	{Red, -1},
	{Green, 0},
	{Blue, 1},
}

// beamState identifies a beam on a cell heading a given way.
type beamState struct {
	pos Coord
	dir Direction
}

// tracer carries the bookkeeping shared by one top-level trace.
type tracer struct {
	grid    *Grid
	budget  int
	records []PathRecord
}

// Trace follows a beam leaving origin in dir and returns every record it
// produces, including those of child beams spawned at splitters and prisms.
// Child records come before the record of the beam that spawned them.
// The grid is not modified.
func Trace(g *Grid, origin Coord, dir Direction, color BeamColor) []PathRecord {
	t := &tracer{grid: g, budget: MaxTraceSegments}
	t.walk(origin, dir, color, 0)
	return t.records
}

// walk follows one beam and appends its record after those of its children.
func (t *tracer) walk(origin Coord, dir Direction, color BeamColor, depth int) {
	if depth > MaxTraceDepth || t.budget <= 0 {
		return
	}
	t.budget--

	var path []Coord
	visited := make(map[beamState]struct{})
	pos := origin

walk:
	for {
		pos = pos.Step(dir)
		if !t.grid.InBounds(pos) {
			break
		}

		st := beamState{pos: pos, dir: dir}
		if _, seen := visited[st]; seen {
			break
		}
		visited[st] = struct{}{}
		path = append(path, pos)

		switch cell := t.grid.Get(pos); cell {
		case Wall:
			break walk

		case MirrorBackslash:
			dir = reflectBackslash(dir)

		case MirrorForwardslash:
			dir = reflectForwardslash(dir)

		case Splitter:
			t.walk(pos, dir, color, depth+1)
			t.walk(pos, dir.Rotate90(), color, depth+1)
			break walk

		case FilterRed, FilterGreen, FilterBlue:
			fc, _ := cell.FilterColor()
			if color != White && color != fc {
				break walk // absorbed
			}
			color = fc

		case Prism:
			if color != White {
				continue // coloured light passes straight through
			}
			for _, p := range prismOffsets {
				child := Direction{
					DX: dir.DX + p.offset*dir.DY,
					DY: dir.DY - p.offset*dir.DX,
				}
				if child.IsZero() {
					continue
				}
				t.walk(pos, child, p.color, depth+1)
			}
			break walk
		}
	}

	end := origin
	if len(path) > 0 {
		end = path[len(path)-1]
	}
	t.records = append(t.records, PathRecord{Path: path, Color: color, Start: origin, End: end})
}

// reflectBackslash turns a beam on a "\" mirror.
// Right->Down, Left->Up, Down->Right, Up->Left. The horizontal
// component decides first, which also settles diagonal beams.
func reflectBackslash(d Direction) Direction {
	switch {
	case d.DX == 1:
		return Down
	case d.DX == -1:
		return Up
	case d.DY == 1:
		return Right
	case d.DY == -1:
		return Left
	default:
		return d
	}
}

// reflectForwardslash turns a beam on a "/" mirror.
// Right->Up, Left->Down, Down->Left, Up->Right.
func reflectForwardslash(d Direction) Direction {
	switch {
	case d.DX == 1:
		return Up
	case d.DX == -1:
		return Down
	case d.DY == 1:
		return Left
	case d.DY == -1:
		return Right
	default:
		return d
	}
}
