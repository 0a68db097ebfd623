package physics

import (
	"fmt"

	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
	"github.com/chewxy/math32"
)

// Get the principal moments of inertia of a unit mass cuboid with the
// given side lengths.
func CuboidInertia(a, b, c float32) types.Vec3 {
	return types.XYZ(
		(b*b+c*c)/12,
		(a*a+c*c)/12,
		(a*a+b*b)/12,
	)
}

// RigidBody spins a scene node freely about its center. The body keeps a
// constant angular momentum and the node's orientation is the only state
// that evolves.
type RigidBody struct {
	node scene.Node

	// Principal moments of inertia in the body frame.
	principal types.Vec3

	// Angular momentum in world space.
	momentum types.Vec3

	targetEnergy float32

	// Column used as the Gram-Schmidt pivot on the next step.
	pivot int
}

// Create a rigid body that drives the orientation of node.
func NewRigidBody(node scene.Node, principal, momentum types.Vec3) (*RigidBody, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: rigid body requires a node", ErrDegenerateConfiguration)
	}
	for axis := 0; axis < 3; axis++ {
		if !(principal[axis] > 0) || math32.IsInf(principal[axis], 0) {
			return nil, fmt.Errorf("%w: principal moments must be positive; got %v", ErrDegenerateConfiguration, principal)
		}
	}
	if !momentum.IsFinite() || momentum.Len() == 0 {
		return nil, fmt.Errorf("%w: angular momentum must be non-zero; got %v", ErrDegenerateConfiguration, momentum)
	}

	rb := &RigidBody{
		node:      node,
		principal: principal,
		momentum:  momentum,
	}
	energy, err := rb.energy()
	if err != nil {
		return nil, err
	}
	rb.targetEnergy = energy
	return rb, nil
}

// Get the node driven by this body.
func (rb *RigidBody) Node() scene.Node {
	return rb.node
}

func (rb *RigidBody) Momentum() types.Vec3 {
	return rb.momentum
}

func (rb *RigidBody) TargetEnergy() float32 {
	return rb.targetEnergy
}

// Set the rotational energy that the angular velocity is normalized to.
func (rb *RigidBody) SetTargetEnergy(energy float32) error {
	if !(energy > 0) || math32.IsInf(energy, 0) {
		return fmt.Errorf("%w: target energy must be positive; got %f", ErrDegenerateConfiguration, energy)
	}
	rb.targetEnergy = energy
	return nil
}

// Get the world space inertia tensor R * I0 * R^-1.
func (rb *RigidBody) InertiaTensor() (types.Mat3, error) {
	inertia, _, err := rb.inertia()
	return inertia, err
}

// Get the rotational energy L^T * I^-1 * L.
func (rb *RigidBody) Energy() (float32, error) {
	return rb.energy()
}

func (rb *RigidBody) energy() (float32, error) {
	inertia, _, err := rb.inertia()
	if err != nil {
		return 0, err
	}
	invInertia, err := inertia.Inv()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrDegenerateConfiguration, err.Error())
	}
	return rb.momentum.Dot(invInertia.Mul3x1(rb.momentum)), nil
}

// Returns the world space inertia tensor and the current orientation.
func (rb *RigidBody) inertia() (types.Mat3, types.Mat3, error) {
	invOrient := rb.node.InverseOrientation()
	orient, err := invOrient.Inv()
	if err != nil {
		return types.Mat3{}, types.Mat3{}, fmt.Errorf("%w: %s", ErrDegenerateConfiguration, err.Error())
	}
	return orient.Mul3(types.Diag3(rb.principal)).Mul3(invOrient), orient, nil
}

// Advance the orientation by dt seconds.
func (rb *RigidBody) Step(dt float32) error {
	inertia, orient, err := rb.inertia()
	if err != nil {
		return err
	}
	invInertia, err := inertia.Inv()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrDegenerateConfiguration, err.Error())
	}

	omega := invInertia.Mul3x1(rb.momentum)
	scale := math32.Sqrt(omega.Dot(inertia.Mul3x1(omega)) / rb.targetEnergy)
	if !(scale > 0) || math32.IsInf(scale, 0) {
		return fmt.Errorf("%w: angular velocity cannot be normalized (scale %f)", ErrDegenerateConfiguration, scale)
	}
	omega = omega.Mul(1 / scale)

	orient = orient.Add(types.Skew(omega).Mul3(orient).Mul(dt)).GramSchmidt(rb.pivot)
	if !orient.IsFinite() {
		return fmt.Errorf("%w: orientation diverged after a step of %f", ErrDegenerateConfiguration, dt)
	}

	rb.node.SetInverseOrientation(orient.Transpose())
	rb.pivot = (rb.pivot + 1) % 3
	return nil
}

// Run steps consecutive steps of dt seconds and stop at the first error.
func (rb *RigidBody) Propagate(dt float32, steps int) error {
	for i := 0; i < steps; i++ {
		if err := rb.Step(dt); err != nil {
			return err
		}
	}
	return nil
}
