package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/achilleasa/marcher/renderer"
	"github.com/achilleasa/marcher/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	sc, err := setupScene(ctx, cfg, time.Duration(ctx.Int("time"))*time.Millisecond)
	if err != nil {
		logger.Error(err)
		return err
	}

	r, err := renderer.NewDefault(sc, scheduler(cfg.Render.Workers), cfg.RendererOptions())
	if err != nil {
		logger.Error(err)
		return err
	}
	defer r.Close()

	frame, err := r.Render()
	if err != nil {
		logger.Error(err)
		return err
	}
	fmt.Fprintln(os.Stdout, frame.String())

	displayFrameStats(r.Stats())
	return nil
}

// The perfect scheduler only pays off when there is more than one tracer.
func scheduler(workers int) tracer.BlockScheduler {
	if workers > 1 {
		return tracer.PerfectScheduler()
	}
	return tracer.NaiveScheduler()
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Hits", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%d", stat.Hits),
			stat.BlockTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", stats.Hits), stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
