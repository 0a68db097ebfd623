package scene

import (
	"strings"
	"testing"

	"github.com/achilleasa/marcher/types"
	"github.com/chewxy/math32"
)

func TestCylinderCaps(t *testing.T) {
	cyl, err := NewCylinder(types.XYZ(0, 0, 1), 0.2, 1, types.XYZ(0, 0, 10))
	if err != nil {
		t.Fatal(err)
	}

	type spec struct {
		p       types.Vec3
		expDist float32
	}
	specs := []spec{
		{types.XYZ(0, 0, 2), -1},
		{types.XYZ(0, 0, 5), 2},
		{types.XYZ(0, 0, -1), 2},
		{types.XYZ(3, 0, 2), 2},
	}
	for index, s := range specs {
		if got := Distance(cyl, s.p); math32.Abs(got-s.expDist) > 1e-5 {
			t.Fatalf("[spec %d] expected distance at %v to be %f; got %f", index, s.p, s.expDist, got)
		}
	}

	// The top cap sits at base + height*axis for non-unit axes.
	long, err := NewCylinder(types.Vec3{}, 9, 1.5, types.XYZ(0, 0, 2))
	if err != nil {
		t.Fatal(err)
	}
	if got := Distance(long, types.XYZ(0, 0, 19)); math32.Abs(got-1) > 1e-5 {
		t.Fatalf("expected point 1 unit above the top cap at z=18 to be 1 unit outside; got %f", got)
	}
	if got := Distance(long, types.XYZ(0, 0, 17)); math32.Abs(got+1) > 1e-5 {
		t.Fatalf("expected point 1 unit below the top cap to be inside; got %f", got)
	}
}

func TestCuboidDistance(t *testing.T) {
	cuboid, err := NewCuboid(1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if cuboid.Sides() != types.XYZ(1, 2, 3) {
		t.Fatalf("unexpected cuboid sides %v", cuboid.Sides())
	}

	if got := Distance(cuboid, types.Vec3{}); got >= 0 {
		t.Fatalf("expected cuboid center to be inside; got %f", got)
	}
	// Far from the edges the rounding is negligible.
	if got := Distance(cuboid, types.XYZ(0, 0, 5)); math32.Abs(got-3.5) > 1e-2 {
		t.Fatalf("expected distance above the top face to be 3.5; got %f", got)
	}
	if got := Distance(cuboid, types.XYZ(0, -3, 0)); math32.Abs(got-2) > 1e-2 {
		t.Fatalf("expected distance in front of the y face to be 2; got %f", got)
	}
}

func TestFigure(t *testing.T) {
	fig, err := NewFigure()
	if err != nil {
		t.Fatal(err)
	}

	inside := []types.Vec3{
		types.XYZ(0, 0, 0),
		types.XYZ(-2, 0, 0),
		types.XYZ(0, 0, 5),
		types.XYZ(0, 0, 10),
	}
	for index, p := range inside {
		if got := Distance(fig, p); got >= 0 {
			t.Fatalf("[point %d] expected %v to be inside the figure; got %f", index, p, got)
		}
	}
	if got := Distance(fig, types.XYZ(0, 0, 20)); got <= 0 {
		t.Fatalf("expected point above the head to be outside; got %f", got)
	}
}

func TestWalk(t *testing.T) {
	cuboid, err := NewCuboid(1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	var count, maxDepth int
	err = Walk(cuboid, func(depth int, _ Node) error {
		count++
		if depth > maxDepth {
			maxDepth = depth
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	// cuboid -> soft intersection -> 6 planes
	if count != 8 || maxDepth != 2 {
		t.Fatalf("expected to visit 8 nodes up to depth 2; got %d nodes up to depth %d", count, maxDepth)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		root, err := Preset(name)
		if err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
		if got := Distance(root, types.Vec3{}); got >= 0 {
			t.Fatalf("preset %q: expected the origin to be inside; got %f", name, got)
		}
	}

	if _, err := Preset("teapot"); err == nil {
		t.Fatal("expected unknown preset to fail")
	}
}

func TestStatsTable(t *testing.T) {
	cuboid, err := NewCuboid(1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	out := Stats(cuboid)
	for _, exp := range []string{"Cuboid", "sides 1.00 x 2.00 x 3.00", "SoftIntersection", "Plane", "8 nodes", "depth 2"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected stats table to contain %q; got:\n%s", exp, out)
		}
	}
}
