package renderer

import (
	"fmt"

	"github.com/achilleasa/marcher/tracer"
)

type Options struct {
	// Ray marching and frame options.
	Tracer tracer.Options

	// Number of cpu tracers. Each tracer renders its block in a
	// separate goroutine.
	Workers int

	// Draw a border around the frame edges.
	Border bool
}

// Get the default renderer options.
func DefaultOptions() Options {
	return Options{
		Tracer:  tracer.DefaultOptions(),
		Workers: 1,
	}
}

func (o Options) validate() error {
	if o.Workers < 1 {
		return fmt.Errorf("%w: at least one worker is required; got %d", ErrNoTracers, o.Workers)
	}
	if o.Tracer.Height < o.Workers {
		return fmt.Errorf("%w: frame height %d is smaller than the number of workers (%d)", ErrNoTracers, o.Tracer.Height, o.Workers)
	}
	return o.Tracer.Validate()
}
