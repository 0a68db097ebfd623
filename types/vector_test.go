package types

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVectorOps(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, 2, 3)

	if got := a.Add(b); got != XYZ(5, 4, 6) {
		t.Fatalf("expected a+b to be (5, 4, 6); got %v", got)
	}
	if got := a.Dot(b); got != 17 {
		t.Fatalf("expected a.b to be 17; got %f", got)
	}
	if got := UnitX.Cross(UnitY); got != UnitZ {
		t.Fatalf("expected x cross y to be z; got %v", got)
	}
	if got := a.Neg().Add(a); got != (Vec3{}) {
		t.Fatalf("expected -a+a to be zero; got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	got := XYZ(3, 4, 5).Normalize()
	if !ApproxEqual(got, XYZ(0.42426, 0.56568, 0.7071), 1e-4) {
		t.Fatalf("unexpected normalized vector %v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("expected zero vector to normalize to zero; got %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !XYZ(1, 2, 3).IsFinite() {
		t.Fatal("expected vector to be finite")
	}
	if XYZ(1, math32.NaN(), 3).IsFinite() {
		t.Fatal("expected vector with NaN component to be reported as non-finite")
	}
}
