package core

// DefaultGridSize is used when a level does not declare a size.
const DefaultGridSize = 10

// Grid represents the board as a square grid of cell kinds.
// Cells are stored in row-major order: index = y*N + x.
type Grid struct {
	N     int        // Side length
	Cells []CellKind // Flat array of cells, length N*N
}

// NewGrid creates an N×N grid with every cell Empty.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = DefaultGridSize
	}
	return &Grid{
		N:     n,
		Cells: make([]CellKind, n*n),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.N + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.N && c.Y >= 0 && c.Y < g.N
}

// Get returns the cell at the given coordinate.
// Returns Empty if out of bounds.
func (g *Grid) Get(c Coord) CellKind {
	if !g.InBounds(c) {
		return Empty
	}
	return g.Cells[g.index(c)]
}

// Set stores a kind at the given coordinate. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, k CellKind) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = k
	}
}

// Rows returns the grid as a 2-D slice of wire tags, indexed [y][x].
func (g *Grid) Rows() [][]string {
	rows := make([][]string, g.N)
	for y := 0; y < g.N; y++ {
		row := make([]string, g.N)
		for x := 0; x < g.N; x++ {
			row[x] = g.Cells[y*g.N+x].String()
		}
		rows[y] = row
	}
	return rows
}
