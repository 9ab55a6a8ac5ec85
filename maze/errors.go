package maze

import "errors"

var (
	// ErrInvalidDimensions indicates a grid was requested with a zero or negative width or height,
	// or with more than MaxCells cells.
	ErrInvalidDimensions = errors.New("maze: width and height must be at least 1 and fit within the cell limit")
	// ErrInconsistentBorders indicates the border storage no longer matches the grid dimensions.
	ErrInconsistentBorders = errors.New("maze: border storage does not match grid dimensions")
)
