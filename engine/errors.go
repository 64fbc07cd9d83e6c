package engine

import "errors"

var (
	// ErrOutOfBounds is returned by Board accessors for coordinates outside the grid.
	ErrOutOfBounds = errors.New("engine: coordinate out of bounds")
	// ErrInvalidPiece is returned for cell values or identities outside [0,7].
	ErrInvalidPiece = errors.New("engine: invalid piece")
	// ErrInvalidConfig is returned by New and Config.Validate.
	ErrInvalidConfig = errors.New("engine: invalid config")
)
