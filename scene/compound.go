package scene

import (
	"fmt"

	"github.com/achilleasa/marcher/types"
)

// Compound wraps a composition root and forwards the whole Node contract
// to it. Objects built from primitives embed a Compound so they can be
// used wherever a primitive is expected.
type Compound struct {
	root Node
}

func (c *Compound) Center() types.Vec3                    { return c.root.Center() }
func (c *Compound) InverseOrientation() types.Mat3        { return c.root.InverseOrientation() }
func (c *Compound) CenteredDistance(p types.Vec3) float32 { return c.root.CenteredDistance(p) }
func (c *Compound) Translate(delta types.Vec3)            { c.root.Translate(delta) }
func (c *Compound) SetOrientation(m types.Mat3) error     { return c.root.SetOrientation(m) }
func (c *Compound) SetInverseOrientation(m types.Mat3)    { c.root.SetInverseOrientation(m) }
func (c *Compound) Children() []Node                      { return []Node{c.root} }

// Wrap an existing node into a compound object.
func NewCompound(root Node) (*Compound, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: compound root is nil", ErrDegenerateGeometry)
	}
	return &Compound{root: root}, nil
}

// A finite cylinder: an infinite cylinder capped by two planes.
type Cylinder struct {
	Compound
	height float32
}

// Create a cylinder whose bottom cap is centered at base and whose top cap
// is centered at base + height*axis. The caps face along the normalized axis.
func NewCylinder(base types.Vec3, height, radius float32, axis types.Vec3) (*Cylinder, error) {
	if !(height > 0) {
		return nil, fmt.Errorf("%w: cylinder height must be positive; got %f", ErrDegenerateGeometry, height)
	}

	shaft, err := NewInfiniteCylinder(base, radius, axis)
	if err != nil {
		return nil, err
	}
	a := shaft.Axis()
	bottom, err := NewPlane(base, a.Neg())
	if err != nil {
		return nil, err
	}
	top, err := NewPlane(base.Add(axis.Mul(height)), a)
	if err != nil {
		return nil, err
	}
	root, err := NewIntersection(shaft, bottom, top)
	if err != nil {
		return nil, err
	}

	return &Cylinder{
		Compound: Compound{root: root},
		height:   height,
	}, nil
}

func (c *Cylinder) Height() float32 {
	return c.height
}

func (c *Cylinder) String() string {
	return fmt.Sprintf("cylinder(h=%.3f)", c.height)
}

// A box with slightly rounded edges, centered at the origin of its frame.
type Cuboid struct {
	Compound
	sides types.Vec3
}

// Create a cuboid with the given side lengths along the local x, y and z
// axes. Edges are rounded by 1% of the longest side.
func NewCuboid(sideA, sideB, sideC float32) (*Cuboid, error) {
	sides := types.XYZ(sideA, sideB, sideC)
	smoothing := sides[0]
	for _, side := range sides {
		if !(side > 0) {
			return nil, fmt.Errorf("%w: cuboid sides must be positive; got %v", ErrDegenerateGeometry, sides)
		}
		if side > smoothing {
			smoothing = side
		}
	}
	smoothing /= 100

	axes := [3]types.Vec3{types.UnitX, types.UnitY, types.UnitZ}
	faces := make([]Node, 0, 6)
	for idx, axis := range axes {
		half := sides[idx] / 2
		for _, dir := range []types.Vec3{axis.Neg(), axis} {
			face, err := NewPlane(dir.Mul(half), dir)
			if err != nil {
				return nil, err
			}
			faces = append(faces, face)
		}
	}

	root, err := NewSoftIntersection(smoothing, faces...)
	if err != nil {
		return nil, err
	}

	return &Cuboid{
		Compound: Compound{root: root},
		sides:    sides,
	}, nil
}

// Get the side lengths along the local x, y and z axes.
func (c *Cuboid) Sides() types.Vec3 {
	return c.sides
}

func (c *Cuboid) String() string {
	return fmt.Sprintf("cuboid(%.3f x %.3f x %.3f)", c.sides[0], c.sides[1], c.sides[2])
}

// Figure is a multi-part sample object: two spheres at the base, a
// cylindrical shaft along +z and a hemispherical head on top, all softly
// blended together.
type Figure struct {
	Compound
}

func NewFigure() (*Figure, error) {
	left, err := NewSphere(types.XYZ(-1, 0, 0), 2)
	if err != nil {
		return nil, err
	}
	right, err := NewSphere(types.XYZ(1, 0, 0), 2)
	if err != nil {
		return nil, err
	}
	shaft, err := NewCylinder(types.Vec3{}, 9, 1.5, types.UnitZ)
	if err != nil {
		return nil, err
	}

	headCenter := types.UnitZ.Mul(9)
	headSphere, err := NewSphere(headCenter, 2)
	if err != nil {
		return nil, err
	}
	headCut, err := NewPlane(headCenter, types.UnitZ.Neg())
	if err != nil {
		return nil, err
	}
	head, err := NewSoftIntersection(DefaultSmoothing, headSphere, headCut)
	if err != nil {
		return nil, err
	}

	root, err := NewSoftUnion(DefaultSmoothing, left, right, shaft, head)
	if err != nil {
		return nil, err
	}
	return &Figure{Compound: Compound{root: root}}, nil
}

func (f *Figure) String() string {
	return "figure"
}
