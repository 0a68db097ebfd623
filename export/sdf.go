package export

import (
	"fmt"

	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// nodeSDF exposes a scene node as an sdfx SDF3 so it can be fed to the
// sdfx renderers.
type nodeSDF struct {
	node scene.Node
	bbox sdf.Box3
}

// Wrap node into an SDF3 with the given bounds.
func NewSDF3(node scene.Node, min, max types.Vec3) (sdf.SDF3, error) {
	if node == nil {
		return nil, fmt.Errorf("export: no node to wrap")
	}
	for axis := 0; axis < 3; axis++ {
		if !(max[axis] > min[axis]) {
			return nil, fmt.Errorf("%w: empty bounding box %v - %v", ErrEmptyBounds, min, max)
		}
	}
	return &nodeSDF{
		node: node,
		bbox: sdf.Box3{Min: toV3(min), Max: toV3(max)},
	}, nil
}

func (s *nodeSDF) Evaluate(p v3.Vec) float64 {
	return float64(scene.Distance(s.node, fromV3(p)))
}

func (s *nodeSDF) BoundingBox() sdf.Box3 {
	return s.bbox
}

func toV3(v types.Vec3) v3.Vec {
	return v3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func fromV3(v v3.Vec) types.Vec3 {
	return types.XYZ(float32(v.X), float32(v.Y), float32(v.Z))
}
