// Package environment outlines the interfaces and types needed to implement
// concrete grid environments
package environment

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() Cell
}

// Task implements the reward scheme for taking actions in some environment
type Task interface {
	// GetReward returns the reward for a transition into next
	GetReward(next Cell) float64

	// AtGoal returns whether a cell is a goal cell of the task
	AtGoal(state Cell) bool
}

// Environment implements a deterministic grid environment.
//
// An Environment holds no run-time state besides its static layout. The
// current position of an agent is owned by whoever drives the environment
// and is passed to Step on each transition.
type Environment interface {
	Task
	Starter

	// Reset returns the starting cell of a new episode
	Reset() Cell

	// Step returns the cell reached by taking action a in state, the
	// reward for the transition, and whether the cell reached is
	// terminal
	Step(state Cell, a Action) (next Cell, reward float64, last bool)

	// Dims returns the number of rows and columns of the grid
	Dims() (r, c int)
}
