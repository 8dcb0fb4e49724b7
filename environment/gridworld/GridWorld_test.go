package gridworld

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/qmaze/environment"
)

func newWorld(t *testing.T, text string) *GridWorld {
	t.Helper()

	layout, err := environment.ParseLayout(strings.NewReader(text))
	require.NoError(t, err)

	g, err := New(layout)
	require.NoError(t, err)
	return g
}

func TestReset(t *testing.T) {
	g := newWorld(t, `
		...
		.S.
		..G
	`)

	assert.Equal(t, environment.Cell{Row: 1, Col: 1}, g.Reset())
	assert.Equal(t, g.Reset(), g.Reset())
}

func TestBoundaryClamping(t *testing.T) {
	g := newWorld(t, `
		S...
		....
		...G
	`)
	r, c := g.Dims()

	for row := 0; row < r; row++ {
		for col := 0; col < c; col++ {
			state := environment.Cell{Row: row, Col: col}
			if g.AtGoal(state) {
				continue
			}

			var outward []environment.Action
			if row == 0 {
				outward = append(outward, environment.Up)
			}
			if row == r-1 {
				outward = append(outward, environment.Down)
			}
			if col == 0 {
				outward = append(outward, environment.Left)
			}
			if col == c-1 {
				outward = append(outward, environment.Right)
			}

			for _, a := range outward {
				next, reward, last := g.Step(state, a)
				assert.Equal(t, state, next, "%v from %v", a, state)
				assert.Equal(t, 0.0, reward, "%v from %v", a, state)
				assert.False(t, last, "%v from %v", a, state)
			}
		}
	}
}

func TestBarrierClamping(t *testing.T) {
	g := newWorld(t, `
		S#.
		.#.
		..G
	`)

	tests := []struct {
		state environment.Cell
		a     environment.Action
	}{
		{environment.Cell{Row: 0, Col: 0}, environment.Right},
		{environment.Cell{Row: 1, Col: 0}, environment.Right},
		{environment.Cell{Row: 0, Col: 2}, environment.Left},
		{environment.Cell{Row: 1, Col: 2}, environment.Left},
		{environment.Cell{Row: 2, Col: 1}, environment.Up},
	}

	for _, test := range tests {
		next, reward, last := g.Step(test.state, test.a)
		assert.Equal(t, test.state, next, "%v from %v", test.a, test.state)
		assert.Equal(t, 0.0, reward)
		assert.False(t, last)
	}
}

func TestMoves(t *testing.T) {
	g := newWorld(t, `
		...
		.S.
		..G
	`)
	start := g.Reset()

	tests := []struct {
		a    environment.Action
		want environment.Cell
	}{
		{environment.Up, environment.Cell{Row: 0, Col: 1}},
		{environment.Down, environment.Cell{Row: 2, Col: 1}},
		{environment.Left, environment.Cell{Row: 1, Col: 0}},
		{environment.Right, environment.Cell{Row: 1, Col: 2}},
	}

	for _, test := range tests {
		next, reward, last := g.Step(start, test.a)
		assert.Equal(t, test.want, next, test.a.String())
		assert.Equal(t, 0.0, reward)
		assert.False(t, last)
	}
}

func TestGoalReward(t *testing.T) {
	g := newWorld(t, `
		S.
		.G
	`)

	next, reward, last := g.Step(environment.Cell{Row: 0, Col: 1},
		environment.Down)
	assert.Equal(t, environment.Cell{Row: 1, Col: 1}, next)
	assert.Equal(t, GoalReward, reward)
	assert.True(t, last)

	next, reward, last = g.Step(environment.Cell{Row: 1, Col: 0},
		environment.Right)
	assert.Equal(t, environment.Cell{Row: 1, Col: 1}, next)
	assert.Equal(t, 10.0, reward)
	assert.True(t, last)

	_, reward, last = g.Step(environment.Cell{Row: 0, Col: 0},
		environment.Right)
	assert.Equal(t, 0.0, reward)
	assert.False(t, last)
}

func TestStepOutOfRangePanics(t *testing.T) {
	g := newWorld(t, `
		S.
		.G
	`)

	assert.Panics(t, func() {
		g.Step(environment.Cell{Row: 2, Col: 0}, environment.Up)
	})
	assert.Panics(t, func() {
		g.Step(environment.Cell{Row: 0, Col: 0}, environment.Action(7))
	})
}

func TestGoalBounds(t *testing.T) {
	g := newWorld(t, `
		S.
		.G
	`)
	goal, ok := g.Task.(*Goal)
	require.True(t, ok)

	assert.Equal(t, TimeStepReward, goal.Min())
	assert.Equal(t, GoalReward, goal.Max())
}
