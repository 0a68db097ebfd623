package tracer

import (
	"fmt"
	"time"

	"github.com/achilleasa/marcher/scene"
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// The scene to trace. It must not be modified while the request
	// is being processed.
	Scene *scene.Scene

	// Tracing options. Options.Width and Options.Height define the frame dims.
	Options Options

	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The row-major frame buffer. Tracers only write to the rows covered
	// by their block.
	Frame []rune
}

// Tracer statistics.
type Stats struct {
	// The rendered block height
	BlockH uint32

	// The time for rendering this block.
	BlockTime time.Duration

	// The number of cells whose ray reached a surface.
	Hits uint32
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Get the tracers computation speed estimate compared to a
	// baseline (cpu) implementation.
	SpeedEstimate() float32

	// Trace the rows of a block request into its frame buffer.
	Trace(req *BlockRequest) error

	// Retrieve last block statistics.
	Stats() *Stats
}

// A tracer that marches rays on the calling goroutine.
type cpuTracer struct {
	id    string
	stats *Stats
}

// Create a new cpu tracer.
func NewCPUTracer(id string) Tracer {
	return &cpuTracer{
		id:    id,
		stats: &Stats{},
	}
}

func (tr *cpuTracer) Id() string {
	return tr.id
}

func (tr *cpuTracer) SpeedEstimate() float32 {
	return 1.0
}

func (tr *cpuTracer) Stats() *Stats {
	return tr.stats
}

func (tr *cpuTracer) Trace(req *BlockRequest) error {
	opts := req.Options
	if req.Scene == nil || req.Scene.Root == nil || req.Scene.Camera == nil {
		return fmt.Errorf("tracer %s: block request has no scene or camera", tr.id)
	}
	if int(req.BlockY+req.BlockH) > opts.Height || len(req.Frame) < opts.Width*opts.Height {
		return fmt.Errorf("tracer %s: block rows [%d, %d) do not fit in a %dx%d frame", tr.id, req.BlockY, req.BlockY+req.BlockH, opts.Width, opts.Height)
	}

	start := time.Now()
	var hits uint32
	cam, root := req.Scene.Camera, req.Scene.Root
	for row := int(req.BlockY); row < int(req.BlockY+req.BlockH); row++ {
		line := req.Frame[row*opts.Width : (row+1)*opts.Width]
		for col := range line {
			ch, hit := tracePixel(cam, root, row, col, opts)
			line[col] = ch
			if hit {
				hits++
			}
		}
	}

	*tr.stats = Stats{
		BlockH:    req.BlockH,
		BlockTime: time.Since(start),
		Hits:      hits,
	}
	return nil
}
