package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/cheggaaa/pb"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"

	"github.com/ha2san/void-survivor/game"
)

// RunOptions describes one headless autopilot session
type RunOptions struct {
	Config      game.Config
	Ticks       int
	RecordEvery int // ticks between snapshots; 0 records only the final state
	Recorder    *Recorder
	Progress    bool
}

// Summary is the outcome of a headless run
type Summary struct {
	Ticks    int
	Final    game.Snapshot
	Events   map[game.EventKind]int
	Recorded int
}

// Run drives a simulation with the autopilot for up to opts.Ticks fixed
// steps, stopping early on game over
func Run(opts RunOptions) (Summary, error) {
	if opts.Ticks <= 0 {
		return Summary{}, errors.Errorf("ticks must be positive, got %d", opts.Ticks)
	}

	pilot := game.NewAutopilot()
	sim, err := game.NewSimulation(opts.Config, pilot, rand.New(rand.NewSource(opts.Config.Seed)))
	if err != nil {
		return Summary{}, err
	}

	var bar *pb.ProgressBar
	if opts.Progress {
		bar = pb.StartNew(opts.Ticks)
	}

	summary := Summary{Events: make(map[game.EventKind]int)}
	dt := opts.Config.TickDuration()
	for summary.Ticks < opts.Ticks && !sim.Over() {
		pilot.Update(sim)
		sim.Advance(dt)
		summary.Ticks++

		sim.Events().Drain(func(e game.Event) {
			summary.Events[e.Kind]++
		})

		if opts.Recorder != nil && opts.RecordEvery > 0 && summary.Ticks%opts.RecordEvery == 0 {
			if err := opts.Recorder.Record(sim.Snapshot()); err != nil {
				return summary, err
			}
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	summary.Final = sim.Snapshot()
	if opts.Recorder != nil {
		if opts.RecordEvery == 0 || summary.Ticks%opts.RecordEvery != 0 {
			if err := opts.Recorder.Record(summary.Final); err != nil {
				return summary, err
			}
		}
		summary.Recorded = opts.Recorder.Count()
	}
	return summary, nil
}

// PrintSummary writes a coloured report of the run
func PrintSummary(w io.Writer, s Summary) {
	status := chalk.Green.Color("survived")
	if s.Final.Over {
		status = chalk.Red.Color("destroyed")
	}

	fmt.Fprintf(w, "%s %s\n", chalk.Bold.TextStyle("session"), s.Final.SessionID)
	fmt.Fprintf(w, "  ship      %s after %d ticks (%.1fs)\n", status, s.Ticks, s.Final.Elapsed)
	fmt.Fprintf(w, "  score     %s\n", chalk.Yellow.Color(fmt.Sprint(s.Final.Score)))
	fmt.Fprintf(w, "  wave      %d (%d/%d kills)\n", s.Final.Wave, s.Final.Kills, s.Final.Required)
	fmt.Fprintf(w, "  lives     %d\n", s.Final.Lives)
	fmt.Fprintf(w, "  explosions %d, lasers %d, missiles %d, waves cleared %d\n",
		s.Events[game.EventExplosion],
		s.Events[game.EventLaserFired],
		s.Events[game.EventMissileLaunch],
		s.Events[game.EventWaveComplete],
	)
	if s.Recorded > 0 {
		fmt.Fprintf(w, "  recorded  %s\n", chalk.Cyan.Color(fmt.Sprintf("%d snapshots", s.Recorded)))
	}
}
