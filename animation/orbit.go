package animation

import (
	"time"

	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
	"github.com/chewxy/math32"
)

// Orbit moves a camera around the world origin on a closed path.
type Orbit struct {
	// Amplitude of the x, y and z oscillations.
	Radii types.Vec3

	// Time for the phase to advance by one radian.
	Period time.Duration
}

func DefaultOrbit() Orbit {
	return Orbit{
		Radii:  types.XYZ(9, 7, 4),
		Period: 1500 * time.Millisecond,
	}
}

// Get the orbit phase at the given elapsed time.
func (o Orbit) Phase(elapsed time.Duration) float32 {
	return float32(elapsed.Milliseconds()) / float32(o.Period.Milliseconds())
}

// Get the camera position at the given elapsed time.
func (o Orbit) Position(elapsed time.Duration) types.Vec3 {
	phase := o.Phase(elapsed)
	return types.XYZ(
		o.Radii[0]*math32.Sin(phase),
		o.Radii[1]*math32.Cos(phase),
		o.Radii[2]*math32.Cos(0.6*phase),
	)
}

// Move cam to its orbit position and point it at the origin with +Z up.
func (o Orbit) Apply(cam *scene.Camera, elapsed time.Duration) error {
	cam.Position = o.Position(elapsed)
	return cam.LookAt(types.Vec3{}, types.UnitZ)
}
