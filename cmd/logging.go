package cmd

import (
	"github.com/achilleasa/marcher/config"
	"github.com/achilleasa/marcher/log"
	"github.com/urfave/cli"
)

var logger = log.New("marcher")

func setupLogging(ctx *cli.Context, cfg *config.Config) {
	log.SetLevel(cfg.LogLevel())

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
