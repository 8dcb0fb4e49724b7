package policy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/qmaze/environment"
)

func TestSoftmaxAllZeroIsUniform(t *testing.T) {
	p, err := NewSoftmax(1.0, 0.1, table{0, 0, 0, 0}, NewSource(8))
	require.NoError(t, err)

	counts := make([]float64, environment.Actions)
	for i := 0; i < trials; i++ {
		counts[p.SelectAction(environment.Cell{})]++
		p.Reset()
	}
	for a := range counts {
		assert.InDelta(t, 0.25, counts[a]/trials, 0.02)
	}
}

func TestSoftmaxPrefersHighValues(t *testing.T) {
	p, err := NewSoftmax(1.0, 0.0, table{0, 2, 0, 0}, NewSource(9))
	require.NoError(t, err)

	// P(Down) = e^2 / (e^2 + 3)
	want := math.Exp(2) / (math.Exp(2) + 3)

	down := 0.0
	for i := 0; i < trials; i++ {
		if p.SelectAction(environment.Cell{}) == environment.Down {
			down++
		}
	}
	assert.InDelta(t, want, down/trials, 0.02)
}

func TestSoftmaxBetaSchedule(t *testing.T) {
	p, err := NewSoftmax(0.5, 0.1, table{1, 0, 0, 0}, NewSource(10))
	require.NoError(t, err)

	assert.InDelta(t, 0.5*math.Exp(0.1), p.Beta(1), 1e-12)
	assert.InDelta(t, 0.5*math.Exp(1.0), p.Beta(10), 1e-12)
}

func TestSoftmaxInfiniteBetaIsGreedy(t *testing.T) {
	p, err := NewSoftmax(1.0, 1000, table{0, 0, 5, 1}, NewSource(11))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, environment.Left, p.SelectAction(environment.Cell{}))
	}
}

func TestNewSoftmaxInvalid(t *testing.T) {
	_, err := NewSoftmax(0, 0.1, table{}, NewSource(1))
	assert.ErrorIs(t, err, environment.ErrInvalidParameter)

	_, err = NewSoftmax(1, math.NaN(), table{}, NewSource(1))
	assert.ErrorIs(t, err, environment.ErrInvalidParameter)
}
