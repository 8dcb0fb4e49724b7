// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/qmaze/environment"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// values the Policy reads.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how action values
// are updated.
type Learner interface {
	// Learn updates the value of taking action a in state given the
	// observed reward and next state
	Learn(state environment.Cell, a environment.Action, reward float64,
		next environment.Cell)

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. For a given agent, the
// Policy and Learner should share the same action values so that any
// changes the learner makes are reflected in the actions the Policy
// chooses
type Policy interface {
	SelectAction(state environment.Cell) environment.Action
}
