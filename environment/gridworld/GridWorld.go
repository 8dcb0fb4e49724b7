// Package gridworld implements 2D gridworld environments with barriers
package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/qmaze/environment"
)

// GridWorld represents a deterministic gridworld environment.
//
// Moving off the edge of the grid or into a barrier leaves the agent where
// it is. Only the static layout is tracked; the agent's position is passed
// in on each call to Step.
type GridWorld struct {
	environment.Task
	environment.Starter
	layout *environment.Layout
}

// New creates a new GridWorld over the argument layout, with the default
// Goal task and a single start at the layout's start cell
func New(layout *environment.Layout) (*GridWorld, error) {
	if layout == nil {
		return nil, environment.InvalidLayout("new: nil layout")
	}

	goal, err := NewGoal(layout, TimeStepReward, GoalReward)
	if err != nil {
		return nil, fmt.Errorf("new: could not create goal: %w", err)
	}

	start, err := NewSingleStart(layout)
	if err != nil {
		return nil, fmt.Errorf("new: could not create starter: %w", err)
	}

	return NewWithTask(layout, goal, start), nil
}

// NewWithTask creates a new GridWorld over the argument layout with task t
// and starting state distribution s
func NewWithTask(layout *environment.Layout, t environment.Task,
	s environment.Starter) *GridWorld {
	return &GridWorld{Task: t, Starter: s, layout: layout}
}

// Reset returns the starting cell of a new episode
func (g *GridWorld) Reset() environment.Cell {
	return g.Start()
}

// Step returns the cell reached by taking action a from state, the reward
// for the transition and whether the goal was reached. Step panics with an
// error wrapping environment.ErrOutOfRange if state is outside of the grid
// or a is not a valid action.
func (g *GridWorld) Step(state environment.Cell,
	a environment.Action) (environment.Cell, float64, bool) {
	r, c := g.layout.Dims()
	if !state.In(r, c) {
		panic(environment.OutOfRange("step: state %v outside of %dx%d grid",
			state, r, c))
	}
	if !a.Valid() {
		panic(environment.OutOfRange("step: no such action %d", int(a)))
	}

	next := a.Apply(state)
	if !g.layout.Passable(next) {
		next = state
	}

	return next, g.GetReward(next), g.AtGoal(next)
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.layout.Dims()
}

// Layout returns the layout of the GridWorld
func (g *GridWorld) Layout() *environment.Layout {
	return g.layout
}

func (g *GridWorld) String() string {
	r, c := g.Dims()
	return fmt.Sprintf("GridWorld | Start: %v  |  Goal: %v  |  Bounds: (%d, %d)",
		g.Start(), g.layout.Goal(), r, c)
}
