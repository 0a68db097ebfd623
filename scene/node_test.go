package scene

import (
	"errors"
	"testing"

	"github.com/achilleasa/marcher/types"
	"github.com/chewxy/math32"
)

func TestSphereDistance(t *testing.T) {
	sphere, err := NewSphere(types.Vec3{}, 2)
	if err != nil {
		t.Fatal(err)
	}

	type spec struct {
		p       types.Vec3
		expDist float32
	}
	specs := []spec{
		{types.XYZ(2, 0, 0), 0},
		{types.XYZ(0, -2, 0), 0},
		{types.XYZ(0, 0, 0), -2},
		{types.XYZ(3, 4, 0), 3},
		{types.XYZ(1, 2, 2), 1},
		{types.XYZ(0, 0, -10), 8},
	}

	for index, s := range specs {
		if got := Distance(sphere, s.p); got != s.expDist {
			t.Fatalf("[spec %d] expected distance at %v to be %f; got %f", index, s.p, s.expDist, got)
		}
	}
}

func TestPlaneAndInfiniteCylinderDistance(t *testing.T) {
	plane, err := NewPlane(types.XYZ(0, 0, 1), types.XYZ(0, 0, 5))
	if err != nil {
		t.Fatal(err)
	}
	if got := Distance(plane, types.XYZ(7, -3, 4)); got != 3 {
		t.Fatalf("expected plane distance to be 3; got %f", got)
	}
	if got := Distance(plane, types.XYZ(0, 0, -1)); got != -2 {
		t.Fatalf("expected plane distance to be -2; got %f", got)
	}

	cyl, err := NewInfiniteCylinder(types.XYZ(1, 0, 0), 0.5, types.XYZ(0, 0, 3))
	if err != nil {
		t.Fatal(err)
	}
	if got := Distance(cyl, types.XYZ(4, 0, 100)); math32.Abs(got-2.5) > 1e-5 {
		t.Fatalf("expected cylinder distance to be 2.5; got %f", got)
	}
	if got := Distance(cyl, types.XYZ(1, 0, -50)); math32.Abs(got+0.5) > 1e-5 {
		t.Fatalf("expected cylinder distance on its axis to be -0.5; got %f", got)
	}
}

func TestDegenerateGeometry(t *testing.T) {
	type spec struct {
		descr string
		build func() (Node, error)
	}
	specs := []spec{
		{"zero radius sphere", func() (Node, error) { return NewSphere(types.Vec3{}, 0) }},
		{"negative radius sphere", func() (Node, error) { return NewSphere(types.Vec3{}, -1) }},
		{"NaN radius sphere", func() (Node, error) { return NewSphere(types.Vec3{}, math32.NaN()) }},
		{"zero normal plane", func() (Node, error) { return NewPlane(types.Vec3{}, types.Vec3{}) }},
		{"zero axis cylinder", func() (Node, error) { return NewInfiniteCylinder(types.Vec3{}, 1, types.Vec3{}) }},
		{"zero radius cylinder", func() (Node, error) { return NewInfiniteCylinder(types.Vec3{}, 0, types.UnitZ) }},
		{"zero height cylinder", func() (Node, error) { return NewCylinder(types.Vec3{}, 0, 1, types.UnitZ) }},
		{"flat cuboid", func() (Node, error) { return NewCuboid(1, 0, 1) }},
		{"empty union", func() (Node, error) { return NewUnion() }},
		{"empty intersection", func() (Node, error) { return NewIntersection() }},
		{"negative smoothing", func() (Node, error) {
			s, _ := NewSphere(types.Vec3{}, 1)
			return NewSoftUnion(-0.1, s)
		}},
	}

	for index, s := range specs {
		_, err := s.build()
		if !errors.Is(err, ErrDegenerateGeometry) {
			t.Fatalf("[spec %d] expected %s to fail with ErrDegenerateGeometry; got %v", index, s.descr, err)
		}
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	cuboid, err := NewCuboid(1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	cuboid.Translate(types.XYZ(1.5, -2.25, 3))
	orig := cuboid.Center()

	v := types.XYZ(0.5, 4, -1.75)
	cuboid.Translate(v)
	cuboid.Translate(v.Neg())

	if got := cuboid.Center(); got != orig {
		t.Fatalf("expected center to be restored to %v; got %v", orig, got)
	}
}

func TestSetOrientation(t *testing.T) {
	cyl, err := NewCylinder(types.Vec3{}, 4, 1, types.UnitZ)
	if err != nil {
		t.Fatal(err)
	}

	// Lay the cylinder along the world x axis.
	err = cyl.SetOrientation(types.Mat3FromCols(types.UnitZ.Neg(), types.UnitY, types.UnitX))
	if err != nil {
		t.Fatal(err)
	}
	if got := Distance(cyl, types.XYZ(2, 0, 0)); math32.Abs(got+1) > 1e-5 {
		t.Fatalf("expected point on the rotated shaft to be 1 unit inside; got %f", got)
	}
	if got := Distance(cyl, types.XYZ(0, 0, 2)); math32.Abs(got-1) > 1e-5 {
		t.Fatalf("expected point above the rotated shaft to be 1 unit outside; got %f", got)
	}

	before := cyl.InverseOrientation()
	singular := types.Mat3FromCols(types.UnitX, types.UnitX, types.UnitZ)
	if err = cyl.SetOrientation(singular); !errors.Is(err, ErrInvalidOrientation) {
		t.Fatalf("expected to get ErrInvalidOrientation; got %v", err)
	}
	if cyl.InverseOrientation() != before {
		t.Fatal("expected a rejected orientation to leave the node unchanged")
	}

	// Uniform scaling by a small factor is still invertible.
	if err = cyl.SetOrientation(types.Ident3().Mul(1e-4)); err != nil {
		t.Fatalf("expected a small scale orientation to be accepted; got %v", err)
	}
	if got := cyl.InverseOrientation(); !got.ApproxEqual(types.Ident3().Mul(1e4), 1e-1) {
		t.Fatalf("expected inverse orientation to be 1e4*I; got %s", got)
	}
}

func TestCompositeMovesChildren(t *testing.T) {
	a, _ := NewSphere(types.XYZ(1, 0, 0), 1)
	b, _ := NewSphere(types.XYZ(-1, 0, 0), 1)
	u, err := NewUnion(a, b)
	if err != nil {
		t.Fatal(err)
	}

	u.Translate(types.XYZ(0, 5, 0))
	if got := Distance(u, types.XYZ(1, 5, 0)); got != -1 {
		t.Fatalf("expected translated child center to be 1 unit inside; got %f", got)
	}

	// A quarter turn around z moves the child at +x to +y.
	if err = u.SetOrientation(types.QuatFromAxisAngle(types.UnitZ, math32.Pi/2).Mat3()); err != nil {
		t.Fatal(err)
	}
	if got := Distance(u, types.XYZ(0, 6, 0)); math32.Abs(got+1) > 1e-5 {
		t.Fatalf("expected rotated child center to be 1 unit inside; got %f", got)
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewCamera(types.XYZ(0, -10, 0))
	if err := cam.LookAt(types.Vec3{}, types.UnitZ); err != nil {
		t.Fatal(err)
	}
	if !cam.Matrix.ApproxEqual(types.Ident3(), 1e-6) {
		t.Fatalf("expected camera looking down +y to have an identity basis; got %s", cam.Matrix)
	}

	if err := cam.LookAt(types.XYZ(0, -10, 5), types.UnitZ); !errors.Is(err, ErrInvalidOrientation) {
		t.Fatalf("expected looking along the up vector to fail; got %v", err)
	}
}
