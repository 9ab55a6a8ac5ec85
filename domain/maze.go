// Package domain holds the values exchanged between the services and the API.
package domain

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeRequest describes the maze a caller wants generated.
type MazeRequest struct {
	Width  int
	Height int
	Seed   *int64 // nil lets the generator pick a seed
}

// GeneratedMaze is a carved maze together with everything needed to reproduce it.
type GeneratedMaze struct {
	ID       uuid.UUID
	Width    int
	Height   int
	Seed     int64
	State    maze.State
	Passages []maze.Edge
	Text     string
}
