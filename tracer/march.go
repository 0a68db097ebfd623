package tracer

import (
	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
)

// The result of marching a ray through a scene. A zero Hit is a miss.
type Hit struct {
	// True if the ray reached a surface.
	Ok bool

	// The surface point and its unit normal.
	Point  types.Vec3
	Normal types.Vec3

	// Distance travelled along the ray and the number of marching steps.
	Travelled  float32
	Iterations int
}

// Generate the normalized world-space direction of the ray that passes
// through the character cell at (row, col).
func Ray(cam *scene.Camera, row, col int, opts Options) types.Vec3 {
	scale := opts.FieldOfView / float32(opts.Width)
	dir := types.XYZ(
		scale*float32(col-opts.Width/2),
		1,
		-scale*opts.AspectRatio*float32(row-opts.Height/2),
	)
	return cam.Matrix.Mul3x1(dir).Normalize()
}

// Sphere-trace a ray starting at origin along the normalized direction dir.
// Rays that start inside the object, travel further than opts.MaxDistance
// or exhaust opts.MaxIterations report a miss.
func March(root scene.Node, origin, dir types.Vec3, opts Options) Hit {
	var travelled float32
	p := origin
	for iter := 0; iter < opts.MaxIterations; iter++ {
		dist := scene.Distance(root, p)

		// The camera is inside the object; there is no entry surface.
		if iter == 0 && dist < 0 {
			return Hit{Iterations: 1}
		}

		if dist < opts.MinDistance {
			return Hit{
				Ok:         true,
				Point:      p,
				Normal:     surfaceNormal(root, p, dist, opts.MinDistance),
				Travelled:  travelled,
				Iterations: iter + 1,
			}
		}

		travelled += dist
		if travelled > opts.MaxDistance {
			return Hit{Iterations: iter + 1}
		}
		p = p.Add(dir.Mul(dist))
	}

	return Hit{Iterations: opts.MaxIterations}
}

// Estimate the surface normal at p with forward differences of the distance
// function.
func surfaceNormal(root scene.Node, p types.Vec3, dist, h float32) types.Vec3 {
	return types.XYZ(
		(scene.Distance(root, p.Add(types.UnitX.Mul(h)))-dist)/h,
		(scene.Distance(root, p.Add(types.UnitY.Mul(h)))-dist)/h,
		(scene.Distance(root, p.Add(types.UnitZ.Mul(h)))-dist)/h,
	).Normalize()
}
