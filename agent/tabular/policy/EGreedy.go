package policy

import (
	"github.com/samuelfneumann/qmaze/environment"
	"github.com/samuelfneumann/qmaze/utils/floatutils"
)

// EGreedy implements an ε-greedy policy over a table of action values.
//
// A state whose action values are all exactly zero has not been learned
// about yet, and an action is chosen uniformly at random in it, exactly as
// on an exploratory step. Ties between non-zero greedy actions are also
// broken uniformly at random.
type EGreedy struct {
	table   ValueTable
	epsilon float64
	rng     Source
	values  []float64
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected
func NewEGreedy(e float64, table ValueTable, rng Source) (*EGreedy, error) {
	if err := validateEpsilon(e); err != nil {
		return nil, err
	}

	return &EGreedy{
		table:   table,
		epsilon: e,
		rng:     rng,
		values:  make([]float64, environment.Actions),
	}, nil
}

// NewGreedy creates a new Greedy policy. Zero-valued and tied states are
// still resolved at random.
func NewGreedy(table ValueTable, rng Source) *EGreedy {
	p, _ := NewEGreedy(0.0, table, rng)
	return p
}

// SelectAction selects an action in state from an ε-greedy policy
func (p *EGreedy) SelectAction(state environment.Cell) environment.Action {
	p.values = p.table.Values(p.values, state)
	return selectAction(p.values, p.epsilon, p.rng)
}

// Epsilon returns the probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Select chooses an action from the action values of a state, indexed by
// environment.Action. With probability epsilon, or if every value is
// exactly zero, the action is chosen uniformly at random. Otherwise an
// action with the maximum value is chosen, with ties broken uniformly at
// random.
//
// Select returns an error wrapping environment.ErrInvalidParameter if
// epsilon is outside of [0, 1] or values does not hold one value per
// action.
func Select(values []float64, epsilon float64,
	rng Source) (environment.Action, error) {
	if err := validateEpsilon(epsilon); err != nil {
		return 0, err
	}
	if len(values) != environment.Actions {
		return 0, environment.InvalidParameter("select: want %d action "+
			"values, have %d", environment.Actions, len(values))
	}

	return selectAction(values, epsilon, rng), nil
}

func selectAction(values []float64, epsilon float64,
	rng Source) environment.Action {
	allZero := floatutils.AllEqual(values, 0.0)
	useRandom := rng.Float64() < epsilon || allZero

	if useRandom {
		return environment.Action(rng.Intn(len(values)))
	}

	_, greedy := floatutils.MaxSlice(values)
	if len(greedy) == 1 {
		return environment.Action(greedy[0])
	}
	return environment.Action(greedy[rng.Intn(len(greedy))])
}

func validateEpsilon(e float64) error {
	if !(e >= 0 && e <= 1) {
		return environment.InvalidParameter("epsilon must be in [0, 1], "+
			"have %v", e)
	}
	return nil
}
