package tracer

import (
	"fmt"
	"unicode/utf8"
)

// The character used for pixels that do not hit any surface.
const Blank = ' '

// Ramp is an ordered list of characters from faintest to densest.
type Ramp []rune

// The brightness ramp used by default.
var DefaultRamp = Ramp(",:;+*@%$#@")

func (r Ramp) String() string {
	return string(r)
}

func (r Ramp) MarshalText() ([]byte, error) {
	return []byte(string(r)), nil
}

func (r *Ramp) UnmarshalText(text []byte) error {
	if !utf8.Valid(text) {
		return fmt.Errorf("%w: ramp is not valid utf-8", ErrInvalidOptions)
	}
	*r = Ramp(string(text))
	return nil
}

// Options bundles the parameters that control ray generation, marching and
// shading.
type Options struct {
	// Horizontal field of view in radians.
	FieldOfView float32 `toml:"field_of_view" comment:"horizontal field of view in radians"`

	// Height to width ratio of a single character cell.
	AspectRatio float32 `toml:"aspect_ratio" comment:"height to width ratio of a terminal character"`

	// Frame dims in characters.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Marching limits.
	MaxIterations int     `toml:"max_iterations"`
	MinDistance   float32 `toml:"min_distance" comment:"surface hit threshold"`
	MaxDistance   float32 `toml:"max_distance" comment:"maximum distance a ray may travel"`

	Ramp Ramp `toml:"ramp" comment:"characters ordered from faintest to densest"`
}

// Get the default tracer options.
func DefaultOptions() Options {
	return Options{
		FieldOfView:   0.8,
		AspectRatio:   2.0,
		Width:         360,
		Height:        100,
		MaxIterations: 275,
		MinDistance:   0.003,
		MaxDistance:   30,
		Ramp:          DefaultRamp,
	}
}

// Check that the options describe a usable configuration.
func (o Options) Validate() error {
	switch {
	case !(o.FieldOfView > 0):
		return fmt.Errorf("%w: field of view must be positive; got %f", ErrInvalidOptions, o.FieldOfView)
	case !(o.AspectRatio > 0):
		return fmt.Errorf("%w: aspect ratio must be positive; got %f", ErrInvalidOptions, o.AspectRatio)
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: frame dimensions must be positive; got %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case o.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations must be positive; got %d", ErrInvalidOptions, o.MaxIterations)
	case !(o.MinDistance > 0):
		return fmt.Errorf("%w: min distance must be positive; got %f", ErrInvalidOptions, o.MinDistance)
	case !(o.MaxDistance > o.MinDistance):
		return fmt.Errorf("%w: max distance (%f) must exceed min distance (%f)", ErrInvalidOptions, o.MaxDistance, o.MinDistance)
	case len(o.Ramp) == 0:
		return fmt.Errorf("%w: brightness ramp must contain at least one character", ErrInvalidOptions)
	}
	return nil
}
