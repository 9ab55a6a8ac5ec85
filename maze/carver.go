package maze

// Rand is the source of randomness used while carving. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// frame is one pending step of the walk: enter current, arriving from last.
type frame struct {
	current Coordinate
	last    Coordinate
}

// RecursiveBacktrack carves a perfect maze with a randomized depth-first walk.
type RecursiveBacktrack struct {
	visited map[Coordinate]bool
}

// NewRecursiveBacktrack returns a carver with an empty visited set.
func NewRecursiveBacktrack() *RecursiveBacktrack {
	return &RecursiveBacktrack{
		visited: make(map[Coordinate]bool),
	}
}

// Carve opens passages in g until every cell is reachable from every other
// through exactly one path, then validates g.
//
// The walk starts at a uniformly random cell. Each newly entered cell opens
// the border it was entered through, then its neighbors are shuffled and
// entered in that order. Frames live on an explicit stack; pushing the
// shuffled neighbors in reverse keeps the visiting order identical to the
// recursive formulation.
func (rb *RecursiveBacktrack) Carve(g *Grid, rng Rand) {
	rb.visited = make(map[Coordinate]bool, g.width*g.height)
	defer func() { rb.visited = make(map[Coordinate]bool) }()

	start := Coordinate{X: rng.Intn(g.width), Y: rng.Intn(g.height)}
	stack := []frame{{current: start, last: start}}

	for len(stack) > 0 {
		f := pop(&stack)
		if rb.visited[f.current] {
			continue
		}
		rb.visited[f.current] = true
		g.OpenPassage(f.current, f.last)

		neighbors := g.Neighbors(f.current)
		rng.Shuffle(len(neighbors), func(i, j int) {
			neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
		})
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !rb.visited[neighbors[i]] {
				stack = append(stack, frame{current: neighbors[i], last: f.current})
			}
		}
	}

	g.Validate()
}

// pop removes and returns the last frame of the stack.
func pop(s *[]frame) frame {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
