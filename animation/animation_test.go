package animation

import (
	"testing"
	"time"

	"github.com/achilleasa/marcher/physics"
	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrbitPosition(t *testing.T) {
	orbit := DefaultOrbit()

	assert.Equal(t, types.XYZ(0, 7, 4), orbit.Position(0))

	elapsed := 1500 * time.Millisecond
	assert.Equal(t, float32(1), orbit.Phase(elapsed))
	exp := types.XYZ(9*math32.Sin(1), 7*math32.Cos(1), 4*math32.Cos(0.6))
	assert.True(t, types.ApproxEqual(exp, orbit.Position(elapsed), 1e-5), "expected %v; got %v", exp, orbit.Position(elapsed))
}

func TestOrbitApplyFacesOrigin(t *testing.T) {
	cam := scene.NewCamera(types.Vec3{})
	orbit := DefaultOrbit()

	for _, elapsed := range []time.Duration{0, 700 * time.Millisecond, 4 * time.Second} {
		require.NoError(t, orbit.Apply(cam, elapsed))

		toOrigin := cam.Position.Neg().Normalize()
		assert.True(t, types.ApproxEqual(toOrigin, cam.Forward(), 1e-5), "expected camera at %v to face the origin; got forward %v", cam.Position, cam.Forward())

		// Screen right stays horizontal.
		assert.InDelta(t, 0, cam.Matrix.Col(0)[2], 1e-6)
		assert.True(t, cam.Matrix.Col(2)[2] > 0, "expected screen up to point towards +z")
	}
}

func TestDriverAdvance(t *testing.T) {
	cuboid, err := scene.NewCuboid(1, 2, 3)
	require.NoError(t, err)
	rb, err := physics.NewRigidBody(cuboid, physics.CuboidInertia(1, 2, 3), types.XYZ(0, 3, 0.01))
	require.NoError(t, err)

	cam := scene.NewCamera(types.Vec3{})
	driver, err := NewDriver(cam, DefaultOrbit(), 50)
	require.NoError(t, err)
	driver.AddBody(rb)

	require.NoError(t, driver.Advance(0))
	assert.Equal(t, types.XYZ(0, 7, 4), cam.Position)
	assert.Equal(t, types.Ident3(), cuboid.InverseOrientation(), "expected no spin without elapsed time")

	require.NoError(t, driver.Advance(100*time.Millisecond))
	assert.Equal(t, DefaultOrbit().Position(100*time.Millisecond), cam.Position)
	assert.NotEqual(t, types.Ident3(), cuboid.InverseOrientation(), "expected the cuboid to spin")

	energy, err := rb.Energy()
	require.NoError(t, err)
	assert.InEpsilon(t, rb.TargetEnergy(), energy, 0.01)
}

func TestNewDriverErrors(t *testing.T) {
	cam := scene.NewCamera(types.Vec3{})

	_, err := NewDriver(nil, DefaultOrbit(), 1)
	assert.Error(t, err)

	_, err = NewDriver(cam, Orbit{Period: 0}, 1)
	assert.Error(t, err)

	_, err = NewDriver(cam, DefaultOrbit(), 0)
	assert.Error(t, err)
}
