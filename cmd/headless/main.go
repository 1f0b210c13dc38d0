package main

import (
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/ha2san/void-survivor/game"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "void-headless"
	app.Usage = "Run Void Survivor without a window, flown by the autopilot"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "ticks", Value: 3600, Usage: "Maximum number of fixed steps"},
		cli.Int64Flag{Name: "seed", Value: 1, Usage: "Random seed"},
		cli.IntFlag{Name: "width", Value: 800, Usage: "Playfield width"},
		cli.IntFlag{Name: "height", Value: 600, Usage: "Playfield height"},
		cli.IntFlag{Name: "tps", Value: 60, Usage: "Ticks per simulated second"},
		cli.StringFlag{Name: "record-file", Value: "", Usage: "Destination file for msgpack snapshots"},
		cli.IntFlag{Name: "record-every", Value: 60, Usage: "Ticks between recorded snapshots"},
		cli.BoolFlag{Name: "progress", Usage: "Show a progress bar"},
		cli.BoolFlag{Name: "debug", Usage: "Log session lifecycle"},
	}
	app.Action = func(c *cli.Context) error {
		cfg := game.DefaultConfig()
		cfg.Seed = c.Int64("seed")
		cfg.ScreenWidth = c.Int("width")
		cfg.ScreenHeight = c.Int("height")
		cfg.TickRate = c.Int("tps")
		if c.Bool("debug") {
			cfg.Logger = log.New(os.Stderr, "[sim] ", log.LstdFlags)
		}

		opts := RunOptions{
			Config:      cfg,
			Ticks:       c.Int("ticks"),
			RecordEvery: c.Int("record-every"),
			Progress:    c.Bool("progress"),
		}
		if path := c.String("record-file"); path != "" {
			rec, err := CreateRecorder(path)
			if err != nil {
				return err
			}
			opts.Recorder = rec
		}

		summary, err := Run(opts)
		if opts.Recorder != nil {
			if cerr := opts.Recorder.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		if err != nil {
			return err
		}
		PrintSummary(os.Stdout, summary)
		return nil
	}
	return app
}
