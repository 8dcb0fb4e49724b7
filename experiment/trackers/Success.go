package trackers

import (
	"gonum.org/v1/gonum/stat"

	ts "github.com/samuelfneumann/qmaze/timestep"
)

// Success tracks whether each episode reached a terminal state (1.0) or
// was cut off at its step limit (0.0)
type Success struct {
	successes []float64
	filename  string
}

// NewSuccess returns a new Success tracker which will save its data at
// the specified location filename
func NewSuccess(filename string) *Success {
	return &Success{filename: filename}
}

// Track records the outcome of an episode on its last timestep
func (s *Success) Track(step ts.TimeStep) {
	if !step.Last() {
		return
	}

	if step.EndType() == ts.TerminalStateReached {
		s.successes = append(s.successes, 1.0)
	} else {
		s.successes = append(s.successes, 0.0)
	}
}

// Data returns the tracked episode outcomes
func (s *Success) Data() []float64 {
	return s.successes
}

// Rate returns the fraction of the last n tracked episodes which reached a
// terminal state, or of all episodes if fewer than n were tracked
func (s *Success) Rate(n int) float64 {
	if len(s.successes) == 0 {
		return 0
	}
	return stat.Mean(last(s.successes, n), nil)
}

// Save saves the data tracked by the Success Tracker to disk.
func (s *Success) Save() error {
	return save(s.filename, s.successes)
}
