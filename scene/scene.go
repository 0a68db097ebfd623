package scene

import "github.com/achilleasa/marcher/types"

// A renderable scene: the root of a node tree and the camera looking at it.
type Scene struct {
	Camera *Camera
	Root   Node
}

func NewScene(root Node) *Scene {
	return &Scene{
		Root: root,
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Get the signed distance from p to the scene surface.
func (s *Scene) Distance(p types.Vec3) float32 {
	return Distance(s.Root, p)
}
