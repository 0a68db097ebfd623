package animation

import (
	"fmt"
	"time"

	"github.com/achilleasa/marcher/physics"
	"github.com/achilleasa/marcher/scene"
)

// Driver advances the camera and any spinning bodies of a scene from the
// time elapsed since the animation started.
type Driver struct {
	camera   *scene.Camera
	orbit    Orbit
	substeps int
	bodies   []*physics.RigidBody

	// Elapsed time of the previous Advance call.
	last time.Duration
}

// Create a driver that moves cam along orbit. Rigid bodies are integrated
// with substeps physics steps per frame.
func NewDriver(cam *scene.Camera, orbit Orbit, substeps int) (*Driver, error) {
	if cam == nil {
		return nil, fmt.Errorf("animation: driver requires a camera")
	}
	if orbit.Period < time.Millisecond {
		return nil, fmt.Errorf("animation: orbit period must be at least 1ms; got %s", orbit.Period)
	}
	if substeps < 1 {
		return nil, fmt.Errorf("animation: substeps must be positive; got %d", substeps)
	}
	return &Driver{
		camera:   cam,
		orbit:    orbit,
		substeps: substeps,
	}, nil
}

// Attach a rigid body that is stepped on every Advance call.
func (d *Driver) AddBody(rb *physics.RigidBody) {
	d.bodies = append(d.bodies, rb)
}

// Move the camera to its position at elapsed and integrate the attached
// bodies over the time passed since the previous call.
func (d *Driver) Advance(elapsed time.Duration) error {
	if err := d.orbit.Apply(d.camera, elapsed); err != nil {
		return err
	}

	delta := elapsed - d.last
	d.last = elapsed
	if delta <= 0 || len(d.bodies) == 0 {
		return nil
	}

	dt := float32(delta.Seconds()) / float32(d.substeps)
	for _, rb := range d.bodies {
		if err := rb.Propagate(dt, d.substeps); err != nil {
			return err
		}
	}
	return nil
}
