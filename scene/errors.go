package scene

import "errors"

var (
	ErrInvalidOrientation = errors.New("scene: invalid orientation matrix")
	ErrDegenerateGeometry = errors.New("scene: degenerate geometry")
)
