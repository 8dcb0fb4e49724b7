package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/samuelfneumann/qmaze/agent/tabular/qlearning"
	env "github.com/samuelfneumann/qmaze/environment"
	"github.com/samuelfneumann/qmaze/environment/gridworld"
	"github.com/samuelfneumann/qmaze/environment/maze"
	"github.com/samuelfneumann/qmaze/experiment"
	"github.com/samuelfneumann/qmaze/experiment/checkpointer"
	"github.com/samuelfneumann/qmaze/experiment/trackers"
	"github.com/samuelfneumann/qmaze/utils/progressbar"
)

const progressWidth = 40

// loadLayout reads the layout file named by cfg or generates a maze
func loadLayout(cfg Config) (*env.Layout, error) {
	if cfg.Layout == "" {
		return maze.Generate(cfg.Rows, cfg.Cols, cfg.MazeSeed)
	}

	file, err := os.Open(cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("loadLayout: could not open layout: %w", err)
	}
	defer file.Close()

	return env.ParseLayout(file)
}

// run trains an agent as described by cfg, writing a summary and the
// learned greedy path to out
func run(cfg Config, out io.Writer, logger zerolog.Logger) error {
	layout, err := loadLayout(cfg)
	if err != nil {
		return err
	}

	world, err := gridworld.New(layout)
	if err != nil {
		return err
	}

	q, err := qlearning.New(world, cfg.Agent(), cfg.Seed)
	if err != nil {
		return err
	}

	o, err := experiment.NewOnline(world, q, cfg.MaxSteps)
	if err != nil {
		return err
	}
	o.SetLogger(logger)

	lengths := trackers.NewEpisodeLength(dataFile(cfg, "lengths.bin"))
	returns := trackers.NewReturn(dataFile(cfg, "returns.bin"))
	success := trackers.NewSuccess(dataFile(cfg, "success.bin"))
	o.Register(lengths)
	o.Register(returns)
	o.Register(success)

	if cfg.Checkpoint != "" {
		o.RegisterCheckpointer(checkpointer.NewNEpisode(cfg.CheckpointEvery,
			q.Table(), checkpointer.Fixed(cfg.Checkpoint)))
	}

	logger.Info().
		Int("rows", rowsOf(layout)).
		Int("cols", colsOf(layout)).
		Stringer("start", layout.Start()).
		Stringer("goal", layout.Goal()).
		Int("trials", cfg.Trials).
		Msg("training")

	outcomes, err := o.Train(cfg.Trials)
	if err != nil {
		return err
	}

	var bar *progressbar.ManualProgressBar
	if cfg.Progress {
		bar = progressbar.NewManualProgressBar(os.Stderr, progressWidth,
			cfg.Trials)
	}
	for range outcomes {
		if bar != nil {
			bar.Increment()
			bar.Display()
		}
	}
	if bar != nil {
		bar.Close()
	}

	if err := o.Err(); err != nil {
		return err
	}
	if cfg.Checkpoint != "" {
		if err := q.Table().Save(cfg.Checkpoint); err != nil {
			return err
		}
	}
	if cfg.DataDir != "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("run: could not create data directory: %w",
				err)
		}
		if err := o.Save(); err != nil {
			return err
		}
	}

	path, reached := experiment.GreedyPath(world, q.Table(),
		rowsOf(layout)*colsOf(layout))

	fmt.Fprintf(out, "success rate (last %d): %.2f\n", cfg.Window,
		success.Rate(cfg.Window))
	fmt.Fprintf(out, "mean episode length (last %d): %.2f\n", cfg.Window,
		lengths.Mean(cfg.Window))
	if reached {
		fmt.Fprintf(out, "greedy path reaches the goal in %d steps\n",
			len(path)-1)
	} else {
		fmt.Fprintf(out, "greedy path does not reach the goal\n")
	}
	fmt.Fprint(out, render(layout, path, cfg.Color))
	return nil
}

func dataFile(cfg Config, name string) string {
	return filepath.Join(cfg.DataDir, name)
}

func rowsOf(l *env.Layout) int {
	r, _ := l.Dims()
	return r
}

func colsOf(l *env.Layout) int {
	_, c := l.Dims()
	return c
}
