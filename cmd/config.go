package cmd

import (
	"os"

	"github.com/achilleasa/marcher/config"
	"github.com/urfave/cli"
)

// Load the configuration file (if one is specified), apply command line
// overrides and setup logging.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := ctx.GlobalString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if ctx.IsSet("width") {
		cfg.Render.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Render.Height = ctx.Int("height")
	}
	if ctx.IsSet("workers") {
		cfg.Render.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("border") {
		cfg.Render.Border = ctx.Bool("border")
	}
	if ctx.IsSet("fps") {
		cfg.Animation.FPS = ctx.Int("fps")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setupLogging(ctx, cfg)
	if path := ctx.GlobalString("config"); path != "" {
		logger.Infof("loaded configuration from %s", path)
	}
	return cfg, nil
}

// Print the effective configuration.
func ShowConfig(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}
	return cfg.Encode(os.Stdout)
}
