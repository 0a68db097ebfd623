package cmd

import (
	"time"

	"github.com/achilleasa/marcher/config"
	"github.com/achilleasa/marcher/scene"
	"github.com/achilleasa/marcher/types"
	"github.com/urfave/cli"
)

// Build the scene selected by the --scene flag and place its camera on the
// orbit position at the given elapsed time.
func setupScene(ctx *cli.Context, cfg *config.Config, elapsed time.Duration) (*scene.Scene, error) {
	name := ctx.String("scene")
	root, err := scene.Preset(name)
	if err != nil {
		return nil, err
	}

	cam := scene.NewCamera(types.Vec3{})
	if err = cfg.Orbit().Apply(cam, elapsed); err != nil {
		return nil, err
	}

	sc := scene.NewScene(root)
	sc.SetCamera(cam)
	logger.Infof("loaded %q scene preset; camera at %v", name, cam.Position)
	return sc, nil
}

// Print the node tree of a scene preset.
func ShowSceneInfo(ctx *cli.Context) error {
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

	logger.Noticef("scene %q\n%s", ctx.String("scene"), scene.Stats(sc.Root))
	return nil
}
