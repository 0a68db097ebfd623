package cmd

import (
	"testing"

	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
)

func TestSpinningBody(t *testing.T) {
	cuboid, err := scene.Preset("cuboid")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = spinningBody(cuboid, types.XYZ(0, 3, 0.01)); err != nil {
		t.Fatalf("expected cuboid to accept a rigid body; got %v", err)
	}

	figure, err := scene.Preset("figure")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = spinningBody(figure, types.XYZ(0, 3, 0.01)); err == nil {
		t.Fatal("expected spin to be rejected for the figure scene")
	}
}
