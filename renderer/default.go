package renderer

import (
	"fmt"
	"sync"
	"time"

	"github.com/achilleasa/marcher/log"
	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/tracer"
)

// The default renderer splits each frame into row blocks and hands them
// to a pool of cpu tracers.
type defaultRenderer struct {
	logger log.Logger

	scene     *scene.Scene
	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer
	opts      Options

	stats FrameStats
}

// Create a new default renderer using the specified block scheduler.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil || sc.Root == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		scene:     sc,
		scheduler: scheduler,
		tracers:   make([]tracer.Tracer, opts.Workers),
		opts:      opts,
	}
	for idx := range r.tracers {
		r.tracers[idx] = tracer.NewCPUTracer(fmt.Sprintf("cpu-%d", idx))
	}
	r.logger.Debugf("attached %d cpu tracer(s) for a %dx%d frame", len(r.tracers), opts.Tracer.Width, opts.Tracer.Height)

	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	r.tracers = nil
}

// Get last frame stats.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Render next frame.
func (r *defaultRenderer) Render() (*Frame, error) {
	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	start := time.Now()
	frame := NewFrame(r.opts.Tracer.Width, r.opts.Tracer.Height)
	blockAssignment := r.scheduler.Schedule(r.tracers, uint32(frame.Height))

	var blockY uint32
	requests := make([]*tracer.BlockRequest, len(r.tracers))
	for idx, blockH := range blockAssignment {
		requests[idx] = &tracer.BlockRequest{
			Scene:   r.scene,
			Options: r.opts.Tracer,
			BlockY:  blockY,
			BlockH:  blockH,
			Frame:   frame.Cells,
		}
		blockY += blockH
	}

	errs := make([]error, len(r.tracers))
	if len(r.tracers) == 1 {
		errs[0] = r.tracers[0].Trace(requests[0])
	} else {
		var wg sync.WaitGroup
		wg.Add(len(r.tracers))
		for idx, tr := range r.tracers {
			go func(idx int, tr tracer.Tracer) {
				defer wg.Done()
				errs[idx] = tr.Trace(requests[idx])
			}(idx, tr)
		}
		wg.Wait()
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if r.opts.Border {
		frame.DrawBorder()
	}

	r.updateStats(time.Since(start))
	r.logger.Debugf("rendered %dx%d frame in %s (%d hits)", frame.Width, frame.Height, r.stats.RenderTime, r.stats.Hits)
	return frame, nil
}

func (r *defaultRenderer) updateStats(renderTime time.Duration) {
	frameH := float32(r.opts.Tracer.Height)
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, len(r.tracers)),
		RenderTime: renderTime,
	}
	for idx, tr := range r.tracers {
		stats := tr.Stats()
		r.stats.Tracers[idx] = TracerStat{
			Id:           tr.Id(),
			BlockH:       stats.BlockH,
			FramePercent: 100.0 * float32(stats.BlockH) / frameH,
			BlockTime:    stats.BlockTime,
			Hits:         stats.Hits,
		}
		r.stats.Hits += stats.Hits
	}
}
