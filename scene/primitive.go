package scene

import (
	"fmt"

	"github.com/achilleasa/marcher/types"
)

// A sphere centered at its frame origin.
type Sphere struct {
	Frame
	radius float32
}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float32) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: sphere radius must be positive; got %f", ErrDegenerateGeometry, radius)
	}
	return &Sphere{
		Frame:  NewFrame(center),
		radius: radius,
	}, nil
}

func (s *Sphere) Radius() float32 {
	return s.radius
}

func (s *Sphere) CenteredDistance(p types.Vec3) float32 {
	return p.Len() - s.radius
}

func (s *Sphere) String() string {
	return fmt.Sprintf("sphere(r=%.3f)", s.radius)
}

// A half-space bounded by a plane through the frame origin. The normal
// points towards empty space so points in front of the plane have a
// positive distance.
type Plane struct {
	Frame
	normal types.Vec3
}

// Create new plane primitive passing through point. The normal is
// normalized before use.
func NewPlane(point, normal types.Vec3) (*Plane, error) {
	n := normal.Normalize()
	if n == (types.Vec3{}) {
		return nil, fmt.Errorf("%w: plane normal must be non-zero", ErrDegenerateGeometry)
	}
	return &Plane{
		Frame:  NewFrame(point),
		normal: n,
	}, nil
}

func (pl *Plane) Normal() types.Vec3 {
	return pl.normal
}

func (pl *Plane) CenteredDistance(p types.Vec3) float32 {
	return p.Dot(pl.normal)
}

func (pl *Plane) String() string {
	return fmt.Sprintf("plane(n=(%.3f, %.3f, %.3f))", pl.normal[0], pl.normal[1], pl.normal[2])
}

// A cylinder with infinite length whose shaft passes through the frame origin.
type InfiniteCylinder struct {
	Frame
	radius float32
	axis   types.Vec3
}

// Create new infinite cylinder primitive. The shaft axis is normalized
// before use.
func NewInfiniteCylinder(center types.Vec3, radius float32, axis types.Vec3) (*InfiniteCylinder, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: cylinder radius must be positive; got %f", ErrDegenerateGeometry, radius)
	}
	a := axis.Normalize()
	if a == (types.Vec3{}) {
		return nil, fmt.Errorf("%w: cylinder axis must be non-zero", ErrDegenerateGeometry)
	}
	return &InfiniteCylinder{
		Frame:  NewFrame(center),
		radius: radius,
		axis:   a,
	}, nil
}

func (c *InfiniteCylinder) Radius() float32 {
	return c.radius
}

func (c *InfiniteCylinder) Axis() types.Vec3 {
	return c.axis
}

func (c *InfiniteCylinder) CenteredDistance(p types.Vec3) float32 {
	return p.Sub(c.axis.Mul(p.Dot(c.axis))).Len() - c.radius
}

func (c *InfiniteCylinder) String() string {
	return fmt.Sprintf("infinite cylinder(r=%.3f, axis=(%.3f, %.3f, %.3f))", c.radius, c.axis[0], c.axis[1], c.axis[2])
}
