/*
Package maze generates perfect mazes over rectangular grids.

A Grid owns the geometry of a width×height lattice and the wall/passage state
of every edge between adjacent cells; all edges start as walls. The
RecursiveBacktrack carver walks the grid depth-first from a random cell and
opens a passage each time it enters an unvisited cell, which leaves the open
edges forming a spanning tree: exactly one path between any two cells.

Randomness is supplied by the caller, so a seeded *rand.Rand reproduces the
same maze:

	g, err := maze.New(10, 5)
	if err != nil {
		return err
	}
	maze.NewRecursiveBacktrack().Carve(g, rand.New(rand.NewSource(42)))
	fmt.Print(g)

Rendering is plain ASCII: '+' corners, "---" and '|' walls, three-space cell bodies.
*/
package maze
