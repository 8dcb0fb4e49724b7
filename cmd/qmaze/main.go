// Command qmaze trains a tabular Q-learning agent to solve a maze and
// prints the path the agent learned.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCommand() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "qmaze",
		Short: "Learn to solve a maze with tabular Q-learning",
		Long: `qmaze trains an epsilon-greedy (or softmax) Q-learning agent on a
grid maze and prints the greedy path through the learned values.

The maze is read from a layout file of '.', '#', 'S' and 'G' characters,
or generated at random when no layout is given. Settings may also be
given as QMAZE_ environment variables, in a .env file, or in a config
file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("could not read config: %w", err)
				}
			}

			cfg, err := loadConfig(v)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			level, _ := zerolog.ParseLevel(cfg.LogLevel)
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()

			return run(cfg, cmd.OutOrStdout(), logger)
		},
	}

	d := Default()
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")

	// Maze
	f.String("layout", d.Layout, "Layout file to train on")
	f.Int("rows", d.Rows, "Rooms per column of a generated maze")
	f.Int("cols", d.Cols, "Rooms per row of a generated maze")
	f.Uint64("maze-seed", d.MazeSeed, "Seed of the maze generator")

	// Training
	f.Int("trials", d.Trials, "Number of training episodes")
	f.Int("max-steps", d.MaxSteps, "Step limit of each episode")
	f.Uint64("seed", d.Seed, "Seed of the agent's random source")

	// Agent
	f.Float64("epsilon", d.Epsilon, "Exploration rate")
	f.Float64("gamma", d.Gamma, "Discount factor")
	f.Float64("learning-rate", d.LearningRate, "Learning rate in (0, 1]")
	f.Bool("skip-stationary", d.SkipStationary,
		"Skip updates that leave the agent in place")
	f.String("policy", d.Policy, "Behaviour policy (EGreedy, Softmax)")
	f.Float64("init-beta", d.InitBeta, "Initial softmax inverse temperature")
	f.Float64("beta-decay", d.BetaDecay,
		"Exponential growth rate of the softmax inverse temperature")

	// Output
	f.String("checkpoint", d.Checkpoint, "File to checkpoint the Q-table to")
	f.Int("checkpoint-every", d.CheckpointEvery,
		"Episodes between checkpoints")
	f.String("data-dir", d.DataDir, "Directory to save episode data in")
	f.Int("window", d.Window, "Episodes to summarize results over")
	f.Bool("progress", d.Progress, "Display a progress bar")
	f.Bool("color", d.Color, "Color the rendered maze")
	f.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")

	cobra.CheckErr(v.BindPFlags(f))
	v.SetEnvPrefix("QMAZE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: could not load .env: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
