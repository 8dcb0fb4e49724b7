package experiment

import (
	"github.com/samuelfneumann/qmaze/environment"
	"github.com/samuelfneumann/qmaze/timestep"
)

// StepLimit ends episodes at a specific timestep limit
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit. Episodes must be
// allowed at least one step.
func NewStepLimit(episodeSteps int) (StepLimit, error) {
	if episodeSteps < 1 {
		return StepLimit{}, environment.InvalidParameter("newStepLimit: "+
			"max steps must be positive, have %d", episodeSteps)
	}
	return StepLimit{episodeSteps}, nil
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended End() will modify the timestep so that its StepType
// field is timestep.Last and its EndType is timestep.Timeout. Timesteps
// that already ended their episode are left unchanged.
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Last() {
		return true
	}

	if t.Number >= s.episodeSteps {
		t.StepType = timestep.Last
		t.SetEnd(timestep.Timeout)
		return true
	}
	return false
}

// Steps returns the step limit
func (s StepLimit) Steps() int {
	return s.episodeSteps
}
