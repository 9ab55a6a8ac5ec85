// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

// MazeController serves freshly carved mazes.
type MazeController struct {
	generator i.MazeGenerator
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze generator must not be nil")
	}
	return &MazeController{
		generator: g,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.generate)
		mazes.GET("/text", mc.generateText)
	}
}

// generate responds with the maze as JSON.
func (mc *MazeController) generate(ctx *gin.Context) {
	generated, ok := mc.carve(ctx)
	if !ok {
		return
	}

	response := &MazeResponse{
		ID:       generated.ID.String(),
		Width:    generated.Width,
		Height:   generated.Height,
		Seed:     generated.Seed,
		State:    generated.State.String(),
		Passages: generated.Passages,
		Text:     generated.Text,
	}
	if response.Passages == nil {
		response.Passages = []maze.Edge{}
	}

	ctx.JSON(http.StatusOK, response)
}

// generateText responds with the ASCII rendering only.
func (mc *MazeController) generateText(ctx *gin.Context) {
	generated, ok := mc.carve(ctx)
	if !ok {
		return
	}

	ctx.Header("X-Maze-ID", generated.ID.String())
	ctx.Header("X-Maze-Seed", strconv.FormatInt(generated.Seed, 10))
	ctx.String(http.StatusOK, generated.Text)
}

// carve binds the query and runs the generator, writing an error response on failure.
func (mc *MazeController) carve(ctx *gin.Context) (*dmn.GeneratedMaze, bool) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	generated, err := mc.generator.Generate(dmn.MazeRequest{
		Width:  request.Width,
		Height: request.Height,
		Seed:   request.Seed,
	})
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions), errors.Is(err, service.ErrDimensionsTooLarge):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return nil, false
	}

	return generated, true
}
