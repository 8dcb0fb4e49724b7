package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/samuelfneumann/qmaze/agent"
	"github.com/samuelfneumann/qmaze/agent/tabular/qlearning"
	env "github.com/samuelfneumann/qmaze/environment"
	"github.com/samuelfneumann/qmaze/experiment"
)

// Config holds all settings of a training run
type Config struct {
	// Maze settings. A layout file takes precedence over a generated maze.
	Layout   string `mapstructure:"layout"`
	Rows     int    `mapstructure:"rows"`
	Cols     int    `mapstructure:"cols"`
	MazeSeed uint64 `mapstructure:"maze-seed"`

	// Training settings
	Trials   int    `mapstructure:"trials"`
	MaxSteps int    `mapstructure:"max-steps"`
	Seed     uint64 `mapstructure:"seed"`

	// Agent settings
	Epsilon        float64 `mapstructure:"epsilon"`
	Gamma          float64 `mapstructure:"gamma"`
	LearningRate   float64 `mapstructure:"learning-rate"`
	SkipStationary bool    `mapstructure:"skip-stationary"`
	Policy         string  `mapstructure:"policy"`
	InitBeta       float64 `mapstructure:"init-beta"`
	BetaDecay      float64 `mapstructure:"beta-decay"`

	// Output settings
	Checkpoint      string `mapstructure:"checkpoint"`
	CheckpointEvery int    `mapstructure:"checkpoint-every"`
	DataDir         string `mapstructure:"data-dir"`
	Window          int    `mapstructure:"window"`
	Progress        bool   `mapstructure:"progress"`
	Color           bool   `mapstructure:"color"`
	LogLevel        string `mapstructure:"log-level"`
}

// Default returns the default training configuration
func Default() Config {
	q := qlearning.DefaultConfig()
	return Config{
		Rows:            4,
		Cols:            4,
		MazeSeed:        1,
		Trials:          500,
		MaxSteps:        experiment.DefaultMaxSteps,
		Seed:            1,
		Epsilon:         q.Epsilon,
		Gamma:           q.Gamma,
		LearningRate:    q.LearningRate,
		Policy:          string(q.Policy),
		InitBeta:        1.0,
		CheckpointEvery: 100,
		Window:          50,
		Progress:        true,
		Color:           true,
		LogLevel:        "info",
	}
}

// loadConfig reads the configuration bound to v on top of the defaults
func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not decode "+
			"configuration: %w", err)
	}
	return cfg, cfg.Validate()
}

// Agent returns the QLearning configuration described by c
func (c Config) Agent() qlearning.Config {
	return qlearning.Config{
		Epsilon:        c.Epsilon,
		Gamma:          c.Gamma,
		LearningRate:   c.LearningRate,
		SkipStationary: c.SkipStationary,
		Policy:         agent.PolicyType(c.Policy),
		InitBeta:       c.InitBeta,
		BetaDecay:      c.BetaDecay,
	}
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Layout == "" && (c.Rows < 1 || c.Cols < 1) {
		return env.InvalidParameter("rows and cols must be positive "+
			"without a layout file, have %dx%d", c.Rows, c.Cols)
	}
	if c.Trials < 0 {
		return env.InvalidParameter("trials must be non-negative, have %d",
			c.Trials)
	}
	if c.MaxSteps < 1 {
		return env.InvalidParameter("max-steps must be positive, have %d",
			c.MaxSteps)
	}
	if c.Checkpoint != "" && c.CheckpointEvery < 1 {
		return env.InvalidParameter("checkpoint-every must be positive, "+
			"have %d", c.CheckpointEvery)
	}
	if c.Window < 1 {
		return env.InvalidParameter("window must be positive, have %d",
			c.Window)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return env.InvalidParameter("log-level: %v", err)
	}
	return c.Agent().Validate()
}
