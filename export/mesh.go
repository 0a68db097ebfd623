package export

import (
	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
	"github.com/deadsy/sdfx/render"
)

// The parameters used for extracting a mesh from a node.
type Options struct {
	// Half size of the cube searched for the solid.
	Extent float32

	// Grid samples per axis used for estimating the solid bounds.
	BoundSamples int

	// Marching cubes cells along the longest bounding box axis.
	Cells int
}

func DefaultOptions() Options {
	return Options{
		Extent:       16,
		BoundSamples: 64,
		Cells:        100,
	}
}

type Triangle struct {
	Normal   types.Vec3
	Vertices [3]types.Vec3
}

type Mesh struct {
	Triangles []Triangle

	// Mesh bounds.
	Min, Max types.Vec3
}

// Extract the surface of node as a triangle mesh using marching cubes.
func ToMesh(node scene.Node, opts Options) (*Mesh, error) {
	min, max, err := EstimateBounds(node, opts.Extent, opts.BoundSamples)
	if err != nil {
		return nil, err
	}
	s, err := NewSDF3(node, min, max)
	if err != nil {
		return nil, err
	}

	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(opts.Cells))

	mesh := &Mesh{
		Triangles: make([]Triangle, 0, len(triangles)),
		Min:       min,
		Max:       max,
	}
	for _, tri := range triangles {
		out := Triangle{Normal: fromV3(tri.Normal())}
		for j := 0; j < 3; j++ {
			out.Vertices[j] = fromV3(tri[j])
		}
		mesh.Triangles = append(mesh.Triangles, out)
	}
	return mesh, nil
}
