package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

// ErrDimensionsTooLarge indicates a request exceeded the configured maximum width or height.
var ErrDimensionsTooLarge = errors.New("maze dimensions exceed the configured maximum")

// MazeGenerator carves mazes with the recursive backtracking algorithm.
// Implements i.MazeGenerator.
type MazeGenerator struct {
	maxDimension int
	logger       i.Logger
	newSeed      func() int64
}

// NewMazeGenerator creates a generator accepting widths and heights up to maxDimension.
func NewMazeGenerator(maxDimension int, logger i.Logger) (*MazeGenerator, error) {
	if maxDimension < 1 {
		return nil, fmt.Errorf("max dimension must be positive, got %d", maxDimension)
	}
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	return &MazeGenerator{
		maxDimension: maxDimension,
		logger:       logger,
		newSeed:      func() int64 { return time.Now().UnixNano() },
	}, nil
}

// Generate carves a width×height maze seeded from req.Seed, or from the clock when it is nil.
func (mg *MazeGenerator) Generate(req dmn.MazeRequest) (*dmn.GeneratedMaze, error) {
	if max(req.Width, req.Height) > mg.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d, limit %d", ErrDimensionsTooLarge, req.Width, req.Height, mg.maxDimension)
	}

	grid, err := maze.New(req.Width, req.Height, maze.WithLogger(mg.logger))
	if err != nil {
		return nil, fmt.Errorf("creating grid: %w", err)
	}

	seed := mg.newSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	maze.NewRecursiveBacktrack().Carve(grid, rand.New(rand.NewSource(seed)))

	text, err := grid.Render()
	if err != nil {
		mg.logger.Error(fmt.Sprintf("Rendering %dx%d maze: %v", req.Width, req.Height, err))
		return nil, fmt.Errorf("rendering maze: %w", err)
	}

	generated := &dmn.GeneratedMaze{
		ID:       uuid.New(),
		Width:    req.Width,
		Height:   req.Height,
		Seed:     seed,
		State:    grid.State(),
		Passages: grid.Passages(),
		Text:     text,
	}
	if generated.State != maze.Valid {
		mg.logger.Warning(fmt.Sprintf("Maze %s finished in state %s", generated.ID, generated.State))
	}
	mg.logger.Info(fmt.Sprintf("Generated %dx%d maze %s with seed %d", req.Width, req.Height, generated.ID, seed))

	return generated, nil
}
