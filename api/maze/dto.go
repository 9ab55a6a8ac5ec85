// Package mazeapi provides structures and utilities for serving generated mazes.
package mazeapi

import "github.com/beka-birhanu/vinom-maze/maze"

// MazeRequest holds the query parameters of a generation request.
type MazeRequest struct {
	Width  int    `form:"width" binding:"required,min=1"`
	Height int    `form:"height" binding:"required,min=1"`
	Seed   *int64 `form:"seed"`
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID       string      `json:"id"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Seed     int64       `json:"seed"`
	State    string      `json:"state"`
	Passages []maze.Edge `json:"passages"`
	Text     string      `json:"text"`
}
