// Package qlearning implements the tabular Q-Learning algorithm.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/qmaze/agent"
	"github.com/samuelfneumann/qmaze/agent/tabular/policy"
	"github.com/samuelfneumann/qmaze/agent/tabular/qtable"
	"github.com/samuelfneumann/qmaze/environment"
)

// resetter is a policy with per-episode state
type resetter interface {
	Reset()
}

// QLearning implements the Q-Learning algorithm. QLearning is the only
// mutator of its QTable.
type QLearning struct {
	agent.Policy
	table *qtable.QTable

	gamma          float64
	learningRate   float64
	skipStationary bool

	seed uint64
}

// New creates a new QLearning agent for the argument environment. All
// random choices are drawn from a single source seeded with seed.
func New(env environment.Environment, c Config, seed uint64) (*QLearning,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}

	r, cols := env.Dims()
	table, err := qtable.New(r, cols)
	if err != nil {
		return nil, fmt.Errorf("new: could not create table: %w", err)
	}

	rng := policy.NewSource(seed)

	var behaviour agent.Policy
	switch c.policy() {
	case agent.Softmax:
		behaviour, err = policy.NewSoftmax(c.InitBeta, c.BetaDecay, table, rng)
	default:
		behaviour, err = policy.NewEGreedy(c.Epsilon, table, rng)
	}
	if err != nil {
		return nil, fmt.Errorf("new: could not create policy: %w", err)
	}

	return &QLearning{
		Policy:         behaviour,
		table:          table,
		gamma:          c.Gamma,
		learningRate:   c.LearningRate,
		skipStationary: c.SkipStationary,
		seed:           seed,
	}, nil
}

// ChooseAction selects the action to take in state
func (q *QLearning) ChooseAction(state environment.Cell) environment.Action {
	return q.SelectAction(state)
}

// Learn updates the estimate of taking action a in state towards the
// one-step target reward + gamma * max_a' Q(next, a')
func (q *QLearning) Learn(state environment.Cell, a environment.Action,
	reward float64, next environment.Cell) {
	if q.skipStationary && next == state {
		return
	}

	target := reward + q.gamma*q.table.BestValue(next)
	if q.learningRate == 1.0 {
		q.table.Update(state, a, target)
		return
	}

	current := q.table.Value(state, a)
	q.table.Update(state, a, current+q.learningRate*(target-current))
}

// EndEpisode performs cleanup at the end of an episode
func (q *QLearning) EndEpisode() {
	if r, ok := q.Policy.(resetter); ok {
		r.Reset()
	}
}

// Table returns the agent's action values. The returned table must only be
// read from.
func (q *QLearning) Table() *qtable.QTable {
	return q.table
}

// Seed returns the seed of the agent's random source
func (q *QLearning) Seed() uint64 {
	return q.seed
}
