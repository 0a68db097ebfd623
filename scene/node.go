package scene

import (
	"fmt"

	"github.com/achilleasa/marcher/types"
)

// Node is implemented by every element of a scene graph: leaf primitives,
// composition operators and compound objects.
type Node interface {
	// The node center in the coordinate frame of its parent.
	Center() types.Vec3

	// The matrix that maps directions from the parent frame into the
	// local frame of the node.
	InverseOrientation() types.Mat3

	// The signed distance of a point expressed in the local frame of the
	// node, i.e. assuming the node is centered at the origin and its axes
	// coincide with the parent axes.
	CenteredDistance(local types.Vec3) float32

	// Move the node center by delta.
	Translate(delta types.Vec3)

	// Set the node orientation. The inverse of m is stored; an error is
	// returned if m is not invertible.
	SetOrientation(m types.Mat3) error

	// Replace the inverse orientation matrix as-is.
	SetInverseOrientation(m types.Mat3)
}

// Group is implemented by nodes that own child nodes.
type Group interface {
	Node

	// Get the owned child nodes in evaluation order.
	Children() []Node
}

// Distance returns the signed distance from a point, expressed in the
// parent frame of n, to the surface of n. It is the only place where
// points are transformed into a node's local frame.
func Distance(n Node, p types.Vec3) float32 {
	return n.CenteredDistance(n.InverseOrientation().Mul3x1(p.Sub(n.Center())))
}

// Frame stores the placement of a node and implements the placement part
// of the Node interface. It is meant to be embedded.
type Frame struct {
	center     types.Vec3
	invOrientM types.Mat3
}

// Create a frame at the given center with identity orientation.
func NewFrame(center types.Vec3) Frame {
	return Frame{
		center:     center,
		invOrientM: types.Ident3(),
	}
}

func (f *Frame) Center() types.Vec3 {
	return f.center
}

func (f *Frame) InverseOrientation() types.Mat3 {
	return f.invOrientM
}

func (f *Frame) Translate(delta types.Vec3) {
	f.center = f.center.Add(delta)
}

func (f *Frame) SetOrientation(m types.Mat3) error {
	inv, err := m.Inv()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOrientation, err.Error())
	}
	f.invOrientM = inv
	return nil
}

func (f *Frame) SetInverseOrientation(m types.Mat3) {
	f.invOrientM = m
}
