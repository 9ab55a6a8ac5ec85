package maze

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carve(t *testing.T, width, height int, seed int64) *Grid {
	t.Helper()
	g, err := New(width, height)
	require.NoError(t, err)
	NewRecursiveBacktrack().Carve(g, rand.New(rand.NewSource(seed)))
	return g
}

// passageGraph builds an undirected graph whose vertices are the cells of g
// and whose edges are its open passages.
func passageGraph(t *testing.T, g *Grid) *core.Graph {
	t.Helper()
	graph := core.NewGraph()
	for _, c := range g.Cells() {
		require.NoError(t, graph.AddVertex(c.String()))
	}
	for _, e := range g.Passages() {
		_, err := graph.AddEdge(e.From.String(), e.To.String(), 0)
		require.NoError(t, err)
	}
	return graph
}

func assertPerfect(t *testing.T, g *Grid) {
	t.Helper()
	cells := g.Cells()
	passages := g.Passages()
	require.Len(t, passages, len(cells)-1, "spanning tree edge count")
	for _, e := range passages {
		assert.True(t, e.From.adjacent(e.To), "edge %v is not between neighbors", e)
	}

	graph := passageGraph(t, g)

	reached, err := bfs.BFS(graph, cells[0].String())
	require.NoError(t, err)
	assert.Len(t, reached.Order, len(cells), "every cell must be reachable from %s", cells[0])

	hasCycle, cycles, err := dfs.DetectCycles(graph)
	require.NoError(t, err)
	assert.False(t, hasCycle, "passages close cycles: %v", cycles)
}

func TestPassageGraph(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	g.OpenPassage(Coordinate{0, 0}, Coordinate{1, 0})
	g.OpenPassage(Coordinate{1, 0}, Coordinate{1, 1})
	g.OpenPassage(Coordinate{1, 1}, Coordinate{0, 1})

	graph := passageGraph(t, g)
	hasCycle, _, err := dfs.DetectCycles(graph)
	require.NoError(t, err)
	assert.False(t, hasCycle)

	// Closing the ring must be seen as a cycle.
	g.OpenPassage(Coordinate{0, 1}, Coordinate{0, 0})
	hasCycle, cycles, err := dfs.DetectCycles(passageGraph(t, g))
	require.NoError(t, err)
	assert.True(t, hasCycle)
	assert.NotEmpty(t, cycles)

	// A walled-off cell is not reached from the origin.
	isolated, err := New(3, 1)
	require.NoError(t, err)
	isolated.OpenPassage(Coordinate{0, 0}, Coordinate{1, 0})
	reached, err := bfs.BFS(passageGraph(t, isolated), Coordinate{0, 0}.String())
	require.NoError(t, err)
	assert.Len(t, reached.Order, 2)
}

func TestCarve(t *testing.T) {
	t.Run("Produces a perfect maze", func(t *testing.T) {
		dims := [][2]int{{1, 1}, {2, 1}, {1, 2}, {1, 9}, {9, 1}, {2, 2}, {5, 3}, {10, 10}, {17, 31}}
		for _, d := range dims {
			for seed := int64(0); seed < 5; seed++ {
				g := carve(t, d[0], d[1], seed)
				assertPerfect(t, g)
				assert.Equal(t, Valid, g.State())
			}
		}
	})

	t.Run("Single cell has no passages", func(t *testing.T) {
		g := carve(t, 1, 1, 7)
		assert.Empty(t, g.Passages())
		assert.Equal(t, "+---+\n|   |\n+---+\n", g.String())
	})

	t.Run("Two cells are joined", func(t *testing.T) {
		g := carve(t, 2, 1, 3)
		assert.Equal(t, []Edge{{From: Coordinate{0, 0}, To: Coordinate{1, 0}}}, g.Passages())

		lines := strings.Split(g.String(), "\n")
		assert.Equal(t, "|       |", lines[1])
	})

	t.Run("Same seed reproduces the maze", func(t *testing.T) {
		first := carve(t, 12, 8, 42)
		second := carve(t, 12, 8, 42)
		assert.Equal(t, first.Passages(), second.Passages())
		assert.Equal(t, first.String(), second.String())
	})

	t.Run("Carver can be reused", func(t *testing.T) {
		rb := NewRecursiveBacktrack()
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 3; i++ {
			g, err := New(6, 4)
			require.NoError(t, err)
			rb.Carve(g, rng)
			assertPerfect(t, g)
		}
		assert.Empty(t, rb.visited)
	})

	t.Run("Large grid does not exhaust the stack", func(t *testing.T) {
		g := carve(t, 400, 400, 99)
		assert.Len(t, g.Passages(), 400*400-1)
	})
}

// scriptedRand starts at a fixed cell and never reorders neighbors.
type scriptedRand struct {
	starts []int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.starts[0]
	s.starts = s.starts[1:]
	return v % n
}

func (s *scriptedRand) Shuffle(int, func(i, j int)) {}

func TestCarveFollowsNeighborOrder(t *testing.T) {
	g, err := New(3, 2)
	require.NoError(t, err)

	// From (0,0) the unshuffled order is west, north, east, south, so the walk
	// runs east along the top row, drops south and comes back west.
	NewRecursiveBacktrack().Carve(g, &scriptedRand{starts: []int{0, 0}})

	want := []string{
		"+---+---+---+",
		"|           |",
		"+---+---+   +",
		"|           |",
		"+---+---+---+",
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", g.String())
}
