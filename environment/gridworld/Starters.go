package gridworld

import (
	"github.com/samuelfneumann/qmaze/environment"
)

// SingleStart starts every episode in the same cell
type SingleStart struct {
	state environment.Cell
}

// NewSingleStart returns a starter which always starts in the start cell
// of the argument layout
func NewSingleStart(layout *environment.Layout) (environment.Starter, error) {
	start := layout.Start()
	if layout.Kind(start) != environment.Start {
		return &SingleStart{}, environment.InvalidLayout("newSingleStart: "+
			"cell %v is not a start cell", start)
	}

	return &SingleStart{start}, nil
}

// Start returns the starting cell
func (s *SingleStart) Start() environment.Cell {
	return s.state
}
