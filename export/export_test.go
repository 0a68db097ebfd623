package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallOptions() Options {
	return Options{
		Extent:       4,
		BoundSamples: 33,
		Cells:        24,
	}
}

func TestSDF3Adapter(t *testing.T) {
	sphere, err := scene.NewSphere(types.XYZ(1, 0, 0), 2)
	require.NoError(t, err)

	s, err := NewSDF3(sphere, types.XYZ(-2, -2, -2), types.XYZ(4, 2, 2))
	require.NoError(t, err)

	assert.InDelta(t, -2, s.Evaluate(v3.Vec{X: 1}), 1e-6)
	assert.InDelta(t, 1, s.Evaluate(v3.Vec{X: 4}), 1e-6)
	assert.Equal(t, v3.Vec{X: -2, Y: -2, Z: -2}, s.BoundingBox().Min)

	_, err = NewSDF3(sphere, types.XYZ(1, 1, 1), types.XYZ(1, 2, 2))
	assert.ErrorIs(t, err, ErrEmptyBounds)
}

func TestEstimateBounds(t *testing.T) {
	sphere, err := scene.NewSphere(types.Vec3{}, 2)
	require.NoError(t, err)

	min, max, err := EstimateBounds(sphere, 4, 33)
	require.NoError(t, err)

	// Grid spacing is 0.25; bounds must enclose the sphere without being
	// much larger than it.
	for axis := 0; axis < 3; axis++ {
		assert.True(t, min[axis] <= -2 && min[axis] >= -2.75, "unexpected min bound %v", min)
		assert.True(t, max[axis] >= 2 && max[axis] <= 2.75, "unexpected max bound %v", max)
	}

	far, err := scene.NewSphere(types.XYZ(100, 0, 0), 1)
	require.NoError(t, err)
	_, _, err = EstimateBounds(far, 4, 33)
	assert.ErrorIs(t, err, ErrEmptyBounds)
}

func TestSphereMesh(t *testing.T) {
	sphere, err := scene.NewSphere(types.Vec3{}, 2)
	require.NoError(t, err)

	mesh, err := ToMesh(sphere, smallOptions())
	require.NoError(t, err)
	require.NotEmpty(t, mesh.Triangles)

	for _, tri := range mesh.Triangles {
		for _, v := range tri.Vertices {
			assert.InDelta(t, 2, v.Len(), 0.3, "expected vertex %v to lie on the sphere", v)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, "sphere", mesh))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "solid sphere\n"))
	assert.True(t, strings.HasSuffix(out, "endsolid sphere\n"))
	assert.Equal(t, len(mesh.Triangles), strings.Count(out, "facet normal"))
	assert.Equal(t, 3*len(mesh.Triangles), strings.Count(out, "vertex"))
}

func TestPresetMesh(t *testing.T) {
	root, err := scene.Preset("cuboid")
	require.NoError(t, err)

	mesh, err := ToMesh(root, smallOptions())
	require.NoError(t, err)
	assert.NotEmpty(t, mesh.Triangles)
	assert.True(t, mesh.Max[2]-mesh.Min[2] > mesh.Max[0]-mesh.Min[0], "expected the cuboid to be taller than it is wide")
}
