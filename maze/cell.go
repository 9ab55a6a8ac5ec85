package maze

import "fmt"

// Coordinate identifies a cell by its column (X) and row (Y).
// It is comparable and is used as a map key throughout the package.
type Coordinate struct {
	X int `json:"x"` // Column index of the cell
	Y int `json:"y"` // Row index of the cell
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// adjacent reports whether c and o are exactly one lattice step apart along a single axis.
func (c Coordinate) adjacent(o Coordinate) bool {
	dx, dy := abs(c.X-o.X), abs(c.Y-o.Y)
	return dx+dy == 1
}

// Border is the state of the edge between two lattice-adjacent cells.
type Border uint8

const (
	// Wall is the zero value: every edge starts walled.
	Wall Border = iota
	Passage
)

// String returns "wall" or "passage".
func (b Border) String() string {
	if b == Passage {
		return "passage"
	}
	return "wall"
}

// Edge is an open border between two adjacent cells.
// From is always the west or north cell of the pair.
type Edge struct {
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
