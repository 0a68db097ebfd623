package cmd

import (
	"os"
	"time"

	"github.com/achilleasa/marcher/export"
	"github.com/urfave/cli"
)

// Export the surface of a scene preset as an STL mesh.
func ExportMesh(ctx *cli.Context) error {
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

	opts := export.DefaultOptions()
	if ctx.IsSet("cells") {
		opts.Cells = ctx.Int("cells")
	}

	start := time.Now()
	mesh, err := export.ToMesh(sc.Root, opts)
	if err != nil {
		logger.Error(err)
		return err
	}
	logger.Infof("extracted %d triangles in %d ms", len(mesh.Triangles), time.Since(start).Nanoseconds()/1e6)

	outFile := ctx.String("out")
	if outFile == "" {
		outFile = ctx.String("scene") + ".stl"
	}
	f, err := os.Create(outFile)
	if err != nil {
		logger.Error(err)
		return err
	}
	defer f.Close()

	if err = export.WriteSTL(f, ctx.String("scene"), mesh); err != nil {
		logger.Error(err)
		return err
	}
	logger.Noticef("wrote %d triangles to %s", len(mesh.Triangles), outFile)
	return nil
}
