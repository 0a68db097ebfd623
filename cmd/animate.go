package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/achilleasa/marcher/animation"
	"github.com/achilleasa/marcher/physics"
	"github.com/achilleasa/marcher/renderer"
	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
	"github.com/muesli/termenv"
	"github.com/urfave/cli"
)

// Render an animated view of a scene preset on the terminal until
// interrupted or until the requested number of frames is drawn.
func Animate(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	sc, err := setupScene(ctx, cfg, 0)
	if err != nil {
		logger.Error(err)
		return err
	}

	driver, err := animation.NewDriver(sc.Camera, cfg.Orbit(), cfg.Animation.Substeps)
	if err != nil {
		logger.Error(err)
		return err
	}
	if ctx.Bool("spin") {
		rb, err := spinningBody(sc.Root, cfg.SpinMomentum())
		if err != nil {
			logger.Error(err)
			return err
		}
		driver.AddBody(rb)
	}

	r, err := renderer.NewDefault(sc, scheduler(cfg.Render.Workers), cfg.RendererOptions())
	if err != nil {
		logger.Error(err)
		return err
	}
	defer r.Close()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := termenv.NewOutput(os.Stdout)
	out.AltScreen()
	out.HideCursor()
	out.ClearScreen()
	defer func() {
		out.ShowCursor()
		out.ExitAltScreen()
	}()

	maxFrames := ctx.Int("frames")
	interval := cfg.FrameInterval()
	start := time.Now()
	for frameCount := 0; maxFrames <= 0 || frameCount < maxFrames; frameCount++ {
		frameStart := time.Now()
		if err = driver.Advance(frameStart.Sub(start)); err != nil {
			logger.Error(err)
			return err
		}

		frame, err := r.Render()
		if err != nil {
			logger.Error(err)
			return err
		}
		renderTime := time.Since(frameStart)

		out.MoveCursor(1, 1)
		fmt.Fprintln(out, frame.String())
		fmt.Fprintf(out, "render: %4d ms  frame: %d", renderTime.Milliseconds(), frameCount+1)

		select {
		case <-sigCtx.Done():
			return nil
		case <-time.After(interval - time.Since(frameStart)):
		}
	}
	return nil
}

// Attach a rigid body to the cuboid preset.
func spinningBody(root scene.Node, momentum types.Vec3) (*physics.RigidBody, error) {
	cuboid, ok := root.(*scene.Cuboid)
	if !ok {
		return nil, errors.New("spin is only supported for the cuboid scene")
	}
	sides := cuboid.Sides()
	return physics.NewRigidBody(cuboid, physics.CuboidInertia(sides[0], sides[1], sides[2]), momentum)
}
