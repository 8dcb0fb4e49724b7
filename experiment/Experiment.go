// Package experiment implements functionality for running episodes of an
// agent in an environment
package experiment

import (
	"fmt"
	"iter"

	"github.com/samuelfneumann/qmaze/experiment/trackers"
)

// Experiment outlines structs that can run experiments. The RunEpisode()
// method runs a single episode, and Train() runs a sequence of episodes
// which all share the same agent. Trackers registered with an Experiment
// receive every TimeStep generated and determine which data is saved by
// Save().
type Experiment interface {
	RunEpisode() Outcome
	Train(numTrials int) (iter.Seq[Outcome], error)

	// Save all tracked data to disk
	Save() error

	// Adds a new trackers.Tracker to the (possibly already running)
	// experiment
	Register(t trackers.Tracker)
}

// Status is the way an episode ended
type Status int

const (
	// Succeeded episodes reached the goal
	Succeeded Status = iota + 1

	// Truncated episodes hit the step limit before reaching the goal
	Truncated
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "Succeeded"
	case Truncated:
		return "Truncated"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome records the result of a single episode
type Outcome struct {
	Episode int // index of the episode over the lifetime of the experiment
	Steps   int
	Status
	Return float64
}

// Succeeded returns whether the episode reached the goal
func (o Outcome) Succeeded() bool {
	return o.Status == Succeeded
}

func (o Outcome) String() string {
	return fmt.Sprintf("Episode %d | %v after %d steps | Return: %.2f",
		o.Episode, o.Status, o.Steps, o.Return)
}

// Steps returns the number of steps taken in each episode of a sequence
// of outcomes
func Steps(outcomes iter.Seq[Outcome]) iter.Seq[int] {
	return func(yield func(int) bool) {
		for o := range outcomes {
			if !yield(o.Steps) {
				return
			}
		}
	}
}
