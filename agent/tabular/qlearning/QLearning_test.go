package qlearning

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/qmaze/agent"
	"github.com/samuelfneumann/qmaze/agent/tabular/policy"
	"github.com/samuelfneumann/qmaze/environment"
	"github.com/samuelfneumann/qmaze/environment/gridworld"
)

func newWorld(t *testing.T) *gridworld.GridWorld {
	t.Helper()

	layout, err := environment.ParseLayout(strings.NewReader(`
		S..
		...
		..G
	`))
	require.NoError(t, err)

	g, err := gridworld.New(layout)
	require.NoError(t, err)
	return g
}

func TestLearnDirectAssignment(t *testing.T) {
	q, err := New(newWorld(t), DefaultConfig(), 1)
	require.NoError(t, err)

	state := environment.Cell{Row: 1, Col: 1}
	next := environment.Cell{Row: 1, Col: 2}
	q.table.Update(next, environment.Down, 5.0)
	q.table.Update(state, environment.Right, 3.0)

	q.Learn(state, environment.Right, 10.0, next)
	assert.Equal(t, 14.5, q.Table().Value(state, environment.Right))
}

func TestLearnLearningRate(t *testing.T) {
	c := DefaultConfig()
	c.LearningRate = 0.5
	q, err := New(newWorld(t), c, 1)
	require.NoError(t, err)

	state := environment.Cell{Row: 0, Col: 0}
	next := environment.Cell{Row: 0, Col: 1}
	q.table.Update(next, environment.Up, 2.0)
	q.table.Update(state, environment.Right, 1.0)

	// 1 + 0.5 * (0 + 0.9*2 - 1)
	q.Learn(state, environment.Right, 0.0, next)
	assert.InDelta(t, 1.4, q.Table().Value(state, environment.Right), 1e-12)
}

func TestLearnSkipStationary(t *testing.T) {
	c := DefaultConfig()
	c.SkipStationary = true
	q, err := New(newWorld(t), c, 1)
	require.NoError(t, err)

	state := environment.Cell{Row: 0, Col: 0}
	q.table.Update(state, environment.Right, 4.0)

	q.Learn(state, environment.Up, 0.0, state)
	assert.Equal(t, 0.0, q.Table().Value(state, environment.Up))

	c.SkipStationary = false
	q, err = New(newWorld(t), c, 1)
	require.NoError(t, err)
	q.table.Update(state, environment.Right, 4.0)

	q.Learn(state, environment.Up, 0.0, state)
	assert.InDelta(t, 3.6, q.Table().Value(state, environment.Up), 1e-12)
}

func TestChooseActionReadsTable(t *testing.T) {
	c := DefaultConfig()
	c.Epsilon = 0
	q, err := New(newWorld(t), c, 1)
	require.NoError(t, err)

	state := environment.Cell{Row: 1, Col: 0}
	q.table.Update(state, environment.Down, 1.0)
	for i := 0; i < 20; i++ {
		assert.Equal(t, environment.Down, q.ChooseAction(state))
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"negative epsilon":   func(c *Config) { c.Epsilon = -0.1 },
		"large epsilon":      func(c *Config) { c.Epsilon = 1.1 },
		"negative gamma":     func(c *Config) { c.Gamma = -1 },
		"large gamma":        func(c *Config) { c.Gamma = 1.01 },
		"zero learning rate": func(c *Config) { c.LearningRate = 0 },
		"unknown policy":     func(c *Config) { c.Policy = "Boltzmann" },
		"softmax no beta": func(c *Config) {
			c.Policy = agent.Softmax
		},
	}

	for name, modify := range tests {
		c := DefaultConfig()
		modify(&c)

		assert.ErrorIs(t, c.Validate(), environment.ErrInvalidParameter, name)
		_, err := New(newWorld(t), c, 1)
		assert.ErrorIs(t, err, environment.ErrInvalidParameter, name)
	}

	assert.NoError(t, DefaultConfig().Validate())
}

func TestCreateAgent(t *testing.T) {
	c := DefaultConfig()
	c.Policy = agent.Softmax
	c.InitBeta = 1.0
	c.BetaDecay = 0.1

	var conf agent.Config = c
	a, err := conf.CreateAgent(newWorld(t), 3)
	require.NoError(t, err)

	q, ok := a.(*QLearning)
	require.True(t, ok)
	_, ok = q.Policy.(*policy.Softmax)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), q.Seed())

	// EndEpisode resets the softmax schedule without panicking
	q.ChooseAction(environment.Cell{})
	q.EndEpisode()
}
