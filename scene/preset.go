package scene

import (
	"fmt"
	"sort"

	"github.com/achilleasa/marcher/types"
)

type presetBuilder func() (Node, error)

var presets = map[string]presetBuilder{
	"figure":  figurePreset,
	"cuboid":  cuboidPreset,
	"spheres": spheresPreset,
}

// Get the names of the available scene presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build the root node of a named scene preset.
func Preset(name string) (Node, error) {
	builder, exists := presets[name]
	if !exists {
		return nil, fmt.Errorf("scene: unknown preset %q; available presets: %v", name, PresetNames())
	}
	return builder()
}

// The sample figure lying along the world x axis and centered on the origin.
func figurePreset() (Node, error) {
	fig, err := NewFigure()
	if err != nil {
		return nil, err
	}
	err = fig.SetOrientation(types.Mat3FromCols(
		types.UnitZ.Neg(),
		types.UnitY,
		types.UnitX,
	))
	if err != nil {
		return nil, err
	}
	fig.Translate(types.XYZ(-4.5, 0, 0))
	return fig, nil
}

func cuboidPreset() (Node, error) {
	return NewCuboid(1, 2, 3)
}

// Three softly blended spheres.
func spheresPreset() (Node, error) {
	centers := []types.Vec3{
		types.XYZ(-1.5, 0, 0),
		types.XYZ(1.5, 0, 0),
		types.XYZ(0, 0, 1.8),
	}
	spheres := make([]Node, 0, len(centers))
	for _, center := range centers {
		s, err := NewSphere(center, 1.4)
		if err != nil {
			return nil, err
		}
		spheres = append(spheres, s)
	}
	return NewSoftUnion(0.5, spheres...)
}
