package main

import (
	"os"
	"strings"

	"github.com/achilleasa/marcher/cmd"
	"github.com/achilleasa/marcher/scene"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	sceneFlag := cli.StringFlag{
		Name:  "scene, s",
		Value: "figure",
		Usage: "scene preset to load; one of " + strings.Join(scene.PresetNames(), ", "),
	}
	frameFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Usage: "frame width in characters (overrides config)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "frame height in characters (overrides config)",
		},
		cli.IntFlag{
			Name:  "workers, w",
			Usage: "number of tracing goroutines (overrides config)",
		},
		cli.BoolFlag{
			Name:  "border",
			Usage: "draw a border around the frame",
		},
	}

	app := cli.NewApp()
	app.Name = "marcher"
	app.Usage = "render signed distance field scenes as ascii art using sphere tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load settings from a TOML file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame to stdout",
			Description: `
Render a single frame of a scene preset. The camera is placed on its orbit
at the time given by --time and looks at the origin.`,
			Flags: append([]cli.Flag{
				sceneFlag,
				cli.IntFlag{
					Name:  "time, t",
					Usage: "orbit time in milliseconds",
				},
			}, frameFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "animate",
			Usage: "render an animated view of a scene on the terminal",
			Description: `
Orbit the camera around a scene preset and redraw the terminal at the
configured frame rate. Press ctrl+c to stop.`,
			Flags: append([]cli.Flag{
				sceneFlag,
				cli.IntFlag{
					Name:  "frames, n",
					Usage: "stop after rendering this many frames (0 renders forever)",
				},
				cli.IntFlag{
					Name:  "fps",
					Usage: "frame rate cap (overrides config)",
				},
				cli.BoolFlag{
					Name:  "spin",
					Usage: "spin the scene object about its center (cuboid scene only)",
				},
			}, frameFlags...),
			Action: cmd.Animate,
		},
		{
			Name:  "export",
			Usage: "export a scene preset as an STL mesh",
			Flags: []cli.Flag{
				sceneFlag,
				cli.StringFlag{
					Name:  "out, o",
					Usage: "STL output file; defaults to the scene name with an .stl extension",
				},
				cli.IntFlag{
					Name:  "cells",
					Usage: "marching cubes cells along the longest axis",
				},
			},
			Action: cmd.ExportMesh,
		},
		{
			Name:   "info",
			Usage:  "display the node tree of a scene preset",
			Flags:  []cli.Flag{sceneFlag},
			Action: cmd.ShowSceneInfo,
		},
		{
			Name:   "config",
			Usage:  "print the effective configuration as TOML",
			Action: cmd.ShowConfig,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
