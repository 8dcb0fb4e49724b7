package gridworld

import (
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/qmaze/environment"
)

const (
	// GoalReward is the reward for a transition into the goal cell
	GoalReward float64 = 10.0

	// TimeStepReward is the reward for every other transition
	TimeStepReward float64 = 0.0
)

// Goal represents the task of reaching the goal cell of a layout
type Goal struct {
	goal           environment.Cell
	timeStepReward float64
	goalReward     float64
}

// NewGoal creates and returns the task of reaching the goal cell of the
// argument layout. Transitions into the goal are rewarded with gr, all
// others with tr.
func NewGoal(layout *environment.Layout, tr, gr float64) (*Goal, error) {
	goal := layout.Goal()
	if layout.Kind(goal) != environment.Goal {
		return nil, environment.InvalidLayout("newGoal: cell %v is not a "+
			"goal", goal)
	}

	return &Goal{goal: goal, timeStepReward: tr, goalReward: gr}, nil
}

// GetReward returns the reward for a transition into next
func (g *Goal) GetReward(next environment.Cell) float64 {
	if g.AtGoal(next) {
		return g.goalReward
	}
	return g.timeStepReward
}

// AtGoal represents if the goal state has been reached or not
func (g *Goal) AtGoal(state environment.Cell) bool {
	return state == g.goal
}

// String returns the Goal as a string
func (g *Goal) String() string {
	return g.goal.String()
}

// Min returns the minimum reward attainable in the Task
func (g *Goal) Min() float64 {
	return floats.Min([]float64{g.timeStepReward, g.goalReward})
}

// Max returns the maximum reward attainable in the Task
func (g *Goal) Max() float64 {
	return floats.Max([]float64{g.timeStepReward, g.goalReward})
}
