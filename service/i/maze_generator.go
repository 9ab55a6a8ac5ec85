package i

import dmn "github.com/beka-birhanu/vinom-maze/domain"

// MazeGenerator carves and renders mazes.
type MazeGenerator interface {
	// Generate builds a perfect maze of the requested size.
	// Returns an error if the dimensions are rejected.
	Generate(req dmn.MazeRequest) (*dmn.GeneratedMaze, error)
}
