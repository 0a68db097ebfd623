package scene

import (
	"fmt"

	"github.com/achilleasa/marcher/types"
)

// The camera type controls the scene camera.
type Camera struct {
	// Camera position in world coordinates.
	Position types.Vec3

	// Converts camera directions to world directions. Its columns are the
	// screen-right, forward and up vectors.
	Matrix types.Mat3
}

// Create a camera at the given position looking down the +Y axis with +Z up.
func NewCamera(position types.Vec3) *Camera {
	return &Camera{
		Position: position,
		Matrix:   types.Ident3(),
	}
}

// Orient the camera so it faces target. The up vector is used to derive the
// screen-right direction and must not be parallel to the viewing direction.
func (c *Camera) LookAt(target, up types.Vec3) error {
	forward := target.Sub(c.Position).Normalize()
	if forward == (types.Vec3{}) {
		return fmt.Errorf("%w: camera target coincides with camera position", ErrInvalidOrientation)
	}
	right := forward.Cross(up).Normalize()
	if right == (types.Vec3{}) {
		return fmt.Errorf("%w: camera up vector is parallel to the viewing direction", ErrInvalidOrientation)
	}

	c.Matrix = types.Mat3FromCols(right, forward, right.Cross(forward))
	return nil
}

// Get the camera viewing direction.
func (c *Camera) Forward() types.Vec3 {
	return c.Matrix.Col(1)
}
