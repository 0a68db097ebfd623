package scene

import (
	"fmt"

	"github.com/achilleasa/marcher/types"
	"github.com/chewxy/math32"
)

// The blend applied by soft operators when no smoothing is specified.
const DefaultSmoothing float32 = 0.05

// Shared state of all composition operators. Operators own their children
// and have an independent frame centered at the origin.
type group struct {
	Frame
	children []Node
}

func newGroup(op string, children []Node) (group, error) {
	if len(children) == 0 {
		return group{}, fmt.Errorf("%w: %s requires at least one child", ErrDegenerateGeometry, op)
	}
	for idx, child := range children {
		if child == nil {
			return group{}, fmt.Errorf("%w: %s child %d is nil", ErrDegenerateGeometry, op, idx)
		}
	}
	return group{
		Frame:    NewFrame(types.Vec3{}),
		children: children,
	}, nil
}

func (g *group) Children() []Node {
	return g.children
}

// Union combines its children by keeping the closest surface.
type Union struct {
	group
}

func NewUnion(children ...Node) (*Union, error) {
	g, err := newGroup("union", children)
	if err != nil {
		return nil, err
	}
	return &Union{group: g}, nil
}

func (u *Union) CenteredDistance(p types.Vec3) float32 {
	dist := Distance(u.children[0], p)
	for _, child := range u.children[1:] {
		if d := Distance(child, p); d < dist {
			dist = d
		}
	}
	return dist
}

func (u *Union) String() string {
	return "union"
}

// Intersection keeps the volume shared by all its children.
type Intersection struct {
	group
}

func NewIntersection(children ...Node) (*Intersection, error) {
	g, err := newGroup("intersection", children)
	if err != nil {
		return nil, err
	}
	return &Intersection{group: g}, nil
}

func (in *Intersection) CenteredDistance(p types.Vec3) float32 {
	dist := Distance(in.children[0], p)
	for _, child := range in.children[1:] {
		if d := Distance(child, p); d > dist {
			dist = d
		}
	}
	return dist
}

func (in *Intersection) String() string {
	return "intersection"
}

// SoftUnion blends the two closest children with a smooth minimum instead
// of producing a sharp crease where they meet.
type SoftUnion struct {
	group
	epsilon float32
}

func NewSoftUnion(epsilon float32, children ...Node) (*SoftUnion, error) {
	if err := validateSmoothing("soft union", epsilon); err != nil {
		return nil, err
	}
	g, err := newGroup("soft union", children)
	if err != nil {
		return nil, err
	}
	return &SoftUnion{group: g, epsilon: epsilon}, nil
}

func (su *SoftUnion) Smoothing() float32 {
	return su.epsilon
}

func (su *SoftUnion) CenteredDistance(p types.Vec3) float32 {
	best, second := bestTwo(su.children, p, false)
	if len(su.children) == 1 {
		return best
	}
	return -smoothMax(-best, -second, su.epsilon)
}

func (su *SoftUnion) String() string {
	return fmt.Sprintf("soft union(eps=%.4f)", su.epsilon)
}

// SoftIntersection blends the two least satisfied children with a smooth
// maximum.
type SoftIntersection struct {
	group
	epsilon float32
}

func NewSoftIntersection(epsilon float32, children ...Node) (*SoftIntersection, error) {
	if err := validateSmoothing("soft intersection", epsilon); err != nil {
		return nil, err
	}
	g, err := newGroup("soft intersection", children)
	if err != nil {
		return nil, err
	}
	return &SoftIntersection{group: g, epsilon: epsilon}, nil
}

func (si *SoftIntersection) Smoothing() float32 {
	return si.epsilon
}

func (si *SoftIntersection) CenteredDistance(p types.Vec3) float32 {
	best, second := bestTwo(si.children, p, true)
	if len(si.children) == 1 {
		return best
	}
	return smoothMax(best, second, si.epsilon)
}

func (si *SoftIntersection) String() string {
	return fmt.Sprintf("soft intersection(eps=%.4f)", si.epsilon)
}

func validateSmoothing(op string, epsilon float32) error {
	if !(epsilon >= 0) || math32.IsInf(epsilon, 1) {
		return fmt.Errorf("%w: %s smoothing must be a non-negative finite value; got %f", ErrDegenerateGeometry, op, epsilon)
	}
	return nil
}

// Smooth maximum unit: (a + b + sqrt((a-b)^2 + eps)) / 2. It equals
// max(a, b) when eps is zero.
func smoothMax(a, b, epsilon float32) float32 {
	return (a + b + math32.Sqrt((a-b)*(a-b)+epsilon)) / 2
}

// Find the two smallest child distances, or the two largest when largest
// is set, in a single pass. Ties keep the child seen first as the best.
func bestTwo(children []Node, p types.Vec3, largest bool) (best, second float32) {
	var sign float32 = 1
	if largest {
		sign = -1
	}

	best, second = math32.MaxFloat32, math32.MaxFloat32
	for _, child := range children {
		d := sign * Distance(child, p)
		if d < best {
			second = best
			best = d
		} else if d < second {
			second = d
		}
	}

	return sign * best, sign * second
}
