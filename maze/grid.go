package maze

import (
	"fmt"
	"strings"
)

// State describes what is known about a grid's validity.
type State uint8

const (
	// Uninitialized is the state of a grid that has not been validated yet.
	Uninitialized State = iota
	// Valid means the dimensions are sane and carving opened the passages it had to.
	Valid
	// InvalidWidthHeight means the dimensions or border storage are unusable.
	InvalidWidthHeight
	// NoPaths means a multi-cell grid has no passage at all.
	NoPaths
)

var stateNames = map[State]string{
	Uninitialized:      "uninitialized",
	Valid:              "valid",
	InvalidWidthHeight: "invalid_width_height",
	NoPaths:            "no_paths",
}

// String returns the snake_case name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Logger receives diagnostics about tolerated misuse of a Grid.
type Logger interface {
	Debug(msg string)
}

// Option configures a Grid at construction time.
type Option func(*Grid)

// WithLogger attaches a logger that is told about ignored OpenPassage calls.
func WithLogger(l Logger) Option {
	return func(g *Grid) {
		g.logger = l
	}
}

// Grid is a width×height lattice of cells and the wall/passage state of every
// internal edge between them.
//
// Horizontal borders separate (x,y) from (x+1,y) and are keyed by the west
// cell; vertical borders separate (x,y) from (x,y+1) and are keyed by the
// north cell. Both are stored as flat row-major slices whose zero value is Wall.
type Grid struct {
	width      int
	height     int
	cells      []Coordinate
	horizontal []Border // (width-1)*height entries
	vertical   []Border // width*(height-1) entries
	state      State
	logger     Logger
}

// MaxCells is the largest number of cells a single grid may hold.
const MaxCells = 1 << 26

// New builds an all-walled grid. Both dimensions must be at least 1 and
// their product must not exceed MaxCells.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, width, height, MaxCells)
	}

	cells := make([]Coordinate, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells = append(cells, Coordinate{X: x, Y: y})
		}
	}

	g := &Grid{
		width:      width,
		height:     height,
		cells:      cells,
		horizontal: make([]Border, (width-1)*height),
		vertical:   make([]Border, width*(height-1)),
		state:      Uninitialized,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// State returns the state recorded by the last Validate call.
func (g *Grid) State() State {
	return g.state
}

// Cells returns every coordinate of the grid in row-major order.
func (g *Grid) Cells() []Coordinate {
	out := make([]Coordinate, len(g.cells))
	copy(out, g.cells)
	return out
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Neighbors returns the in-bounds cells adjacent to c, ordered west, north, east, south.
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	candidates := [4]Coordinate{
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y - 1},
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
	}

	result := make([]Coordinate, 0, len(candidates))
	for _, n := range candidates {
		if g.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// OpenPassage turns the border between current and last into a Passage.
// Pairs that are not one axis step apart, including current == last, and
// pairs that leave the grid are ignored.
func (g *Grid) OpenPassage(current, last Coordinate) {
	border, ok := g.borderFor(current, last)
	if !ok {
		if current != last {
			g.debug(fmt.Sprintf("ignoring passage between %s and %s", current, last))
		}
		return
	}
	*border = Passage
}

// Border returns the state of the edge between a and b.
// The boolean is false when the two cells do not share an edge inside the grid.
func (g *Grid) Border(a, b Coordinate) (Border, bool) {
	border, ok := g.borderFor(a, b)
	if !ok {
		return Wall, false
	}
	return *border, true
}

// Passages lists every open edge, horizontal borders before vertical ones,
// each in row-major order.
func (g *Grid) Passages() []Edge {
	var edges []Edge
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width-1; x++ {
			if g.horizontal[g.horizontalIndex(x, y)] == Passage {
				edges = append(edges, Edge{From: Coordinate{X: x, Y: y}, To: Coordinate{X: x + 1, Y: y}})
			}
		}
	}
	for y := 0; y < g.height-1; y++ {
		for x := 0; x < g.width; x++ {
			if g.vertical[g.verticalIndex(x, y)] == Passage {
				edges = append(edges, Edge{From: Coordinate{X: x, Y: y}, To: Coordinate{X: x, Y: y + 1}})
			}
		}
	}
	return edges
}

// Validate records and returns the grid's state: InvalidWidthHeight when the
// geometry is unusable, NoPaths when a grid of more than one cell has no
// passage, Valid otherwise.
func (g *Grid) Validate() State {
	switch {
	case g.width < 1 || g.height < 1 || g.checkConsistency() != nil:
		g.state = InvalidWidthHeight
	case g.width*g.height > 1 && len(g.Passages()) == 0:
		g.state = NoPaths
	default:
		g.state = Valid
	}
	return g.state
}

// Render draws the grid as an ASCII box diagram. Every cell body is three
// spaces wide and every corner is a '+'. The result has 2*height+1 lines of
// 4*width+1 characters, each terminated by a newline.
func (g *Grid) Render() (string, error) {
	if err := g.checkConsistency(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow((2*g.height + 1) * (4*g.width + 2))

	// Top boundary
	sb.WriteString("+" + strings.Repeat("---+", g.width) + "\n")

	for y := 0; y < g.height; y++ {
		// Cell bodies and east edges
		sb.WriteByte('|')
		for x := 0; x < g.width; x++ {
			sb.WriteString("   ")
			if x < g.width-1 && g.horizontal[g.horizontalIndex(x, y)] == Passage {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')

		// South edges
		sb.WriteByte('+')
		for x := 0; x < g.width; x++ {
			if y < g.height-1 && g.vertical[g.verticalIndex(x, y)] == Passage {
				sb.WriteString("   +")
			} else {
				sb.WriteString("---+")
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// String renders the grid, panicking if the border storage is corrupt.
func (g *Grid) String() string {
	text, err := g.Render()
	if err != nil {
		panic(err)
	}
	return text
}

// borderFor locates the stored border between a and b.
func (g *Grid) borderFor(a, b Coordinate) (*Border, bool) {
	if !g.InBounds(a) || !g.InBounds(b) || !a.adjacent(b) {
		return nil, false
	}

	x, y := min(a.X, b.X), min(a.Y, b.Y)
	if a.Y == b.Y {
		return &g.horizontal[g.horizontalIndex(x, y)], true
	}
	return &g.vertical[g.verticalIndex(x, y)], true
}

func (g *Grid) horizontalIndex(x, y int) int {
	return y*(g.width-1) + x
}

func (g *Grid) verticalIndex(x, y int) int {
	return y*g.width + x
}

func (g *Grid) checkConsistency() error {
	if len(g.horizontal) != (g.width-1)*g.height || len(g.vertical) != g.width*(g.height-1) {
		return fmt.Errorf("%w: %dx%d grid holds %d horizontal and %d vertical borders",
			ErrInconsistentBorders, g.width, g.height, len(g.horizontal), len(g.vertical))
	}
	return nil
}

func (g *Grid) debug(msg string) {
	if g.logger != nil {
		g.logger.Debug(msg)
	}
}
