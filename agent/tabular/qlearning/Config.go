package qlearning

import (
	"math"

	"github.com/samuelfneumann/qmaze/agent"
	"github.com/samuelfneumann/qmaze/environment"
)

// Config represents a configuration for the QLearning agent
type Config struct {
	Epsilon float64 // epislon for behaviour policy
	Gamma   float64 // discount factor

	// LearningRate blends the one-step target into the current estimate.
	// A learning rate of 1 replaces the estimate with the target, which
	// is exact in deterministic environments.
	LearningRate float64

	// SkipStationary skips updates for transitions that leave the agent
	// in the same cell
	SkipStationary bool

	// Policy selects the behaviour policy; the zero value is
	// agent.EGreedy
	Policy agent.PolicyType

	// InitBeta and BetaDecay parameterize the agent.Softmax behaviour
	// policy's inverse temperature schedule
	InitBeta  float64
	BetaDecay float64
}

// DefaultConfig returns the default QLearning configuration
func DefaultConfig() Config {
	return Config{
		Epsilon:      0.1,
		Gamma:        0.9,
		LearningRate: 1.0,
		Policy:       agent.EGreedy,
	}
}

// CreateAgent creates the agent from the Config. Agent action values are
// always initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	return New(env, c, seed)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !(c.Epsilon >= 0 && c.Epsilon <= 1) {
		return environment.InvalidParameter("epsilon must be in [0, 1], "+
			"have %v", c.Epsilon)
	}
	if !(c.Gamma >= 0 && c.Gamma <= 1) {
		return environment.InvalidParameter("gamma must be in [0, 1], "+
			"have %v", c.Gamma)
	}
	if !(c.LearningRate > 0 && c.LearningRate <= 1) {
		return environment.InvalidParameter("learning rate must be in "+
			"(0, 1], have %v", c.LearningRate)
	}

	switch c.policy() {
	case agent.EGreedy:
	case agent.Softmax:
		if !(c.InitBeta > 0) || math.IsInf(c.InitBeta, 0) {
			return environment.InvalidParameter("initial beta must be "+
				"positive and finite, have %v", c.InitBeta)
		}
		if math.IsNaN(c.BetaDecay) || math.IsInf(c.BetaDecay, 0) {
			return environment.InvalidParameter("beta decay must be "+
				"finite, have %v", c.BetaDecay)
		}
	default:
		return environment.InvalidParameter("no such policy %q", c.Policy)
	}
	return nil
}

func (c Config) policy() agent.PolicyType {
	if c.Policy == "" {
		return agent.EGreedy
	}
	return c.Policy
}
