package tracer

import (
	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
)

// Map a marching result to a ramp character using the Lambertian term
// between the surface normal and the direction towards the camera.
func Shade(hit Hit, dir types.Vec3, ramp Ramp) rune {
	if !hit.Ok || len(ramp) == 0 {
		return Blank
	}

	intensity := hit.Normal.Dot(dir.Neg().Normalize())
	index := intensity * float32(len(ramp))
	switch {
	case index < 0:
		return Blank
	case index > float32(len(ramp)-1):
		return ramp[len(ramp)-1]
	}
	return ramp[int(index)]
}

// Compute the character for the cell at (row, col). Pixel does not modify
// its arguments and may be called concurrently for different cells.
func Pixel(cam *scene.Camera, root scene.Node, row, col int, opts Options) rune {
	ch, _ := tracePixel(cam, root, row, col, opts)
	return ch
}

func tracePixel(cam *scene.Camera, root scene.Node, row, col int, opts Options) (rune, bool) {
	dir := Ray(cam, row, col, opts)
	hit := March(root, cam.Position, dir, opts)
	return Shade(hit, dir, opts.Ramp), hit.Ok
}
