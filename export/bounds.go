package export

import (
	"errors"

	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
)

var ErrEmptyBounds = errors.New("export: node has no interior inside the search region")

// Estimate the axis aligned bounds of the solid described by node by
// sampling a grid over the cube [-extent, extent]^3. The result is padded
// by one grid cell on every side.
func EstimateBounds(node scene.Node, extent float32, samples int) (min, max types.Vec3, err error) {
	if samples < 2 || !(extent > 0) {
		return min, max, ErrEmptyBounds
	}

	cell := 2 * extent / float32(samples-1)
	found := false
	var p types.Vec3
	for i := 0; i < samples; i++ {
		p[0] = -extent + float32(i)*cell
		for j := 0; j < samples; j++ {
			p[1] = -extent + float32(j)*cell
			for k := 0; k < samples; k++ {
				p[2] = -extent + float32(k)*cell
				// Keep points within one cell of the surface.
				if scene.Distance(node, p) > cell {
					continue
				}
				if !found {
					min, max, found = p, p, true
					continue
				}
				min = types.MinVec3(min, p)
				max = types.MaxVec3(max, p)
			}
		}
	}
	if !found {
		return min, max, ErrEmptyBounds
	}

	pad := types.XYZ(cell, cell, cell)
	return min.Sub(pad), max.Add(pad), nil
}
