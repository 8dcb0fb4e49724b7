package policy

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/samuelfneumann/qmaze/environment"
	"github.com/samuelfneumann/qmaze/utils/floatutils"
)

// Softmax implements a Boltzmann policy over a table of action values.
//
// The inverse temperature grows exponentially with the number of steps
// taken in the current episode: beta(n) = initBeta * exp(k * n), where n
// counts from 1. States whose action values are all exactly zero select an
// action uniformly at random.
type Softmax struct {
	table    ValueTable
	initBeta float64
	k        float64
	step     int
	rng      *rand.Rand

	values []float64
	probs  []float64
}

// NewSoftmax returns a new Softmax policy
func NewSoftmax(initBeta, k float64, table ValueTable,
	rng *rand.Rand) (*Softmax, error) {
	if !(initBeta > 0) || math.IsInf(initBeta, 0) {
		return nil, environment.InvalidParameter("newSoftmax: initial "+
			"beta must be positive and finite, have %v", initBeta)
	}
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return nil, environment.InvalidParameter("newSoftmax: beta "+
			"schedule rate must be finite, have %v", k)
	}

	return &Softmax{
		table:    table,
		initBeta: initBeta,
		k:        k,
		rng:      rng,
		values:   make([]float64, environment.Actions),
		probs:    make([]float64, environment.Actions),
	}, nil
}

// Beta returns the inverse temperature used on the n-th step of an episode
func (s *Softmax) Beta(n int) float64 {
	return s.initBeta * math.Exp(s.k*float64(n))
}

// SelectAction selects an action in state by sampling from the softmax of
// the state's action values
func (s *Softmax) SelectAction(state environment.Cell) environment.Action {
	s.step++
	s.values = s.table.Values(s.values, state)

	if floatutils.AllEqual(s.values, 0.0) {
		return environment.Action(s.rng.Intn(environment.Actions))
	}

	beta := s.Beta(s.step)
	if math.IsInf(beta, 1) {
		return s.greedy()
	}

	s.probs = floatutils.Softmax(s.probs, s.values, beta)
	if floats.HasNaN(s.probs) {
		return s.greedy()
	}
	i, ok := sampleuv.NewWeighted(s.probs, s.rng).Take()
	if !ok {
		return s.greedy()
	}
	return environment.Action(i)
}

// greedy returns a maximising action, breaking ties at random
func (s *Softmax) greedy() environment.Action {
	_, greedy := floatutils.MaxSlice(s.values)
	return environment.Action(greedy[s.rng.Intn(len(greedy))])
}

// Reset restarts the beta schedule for a new episode
func (s *Softmax) Reset() {
	s.step = 0
}
