package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/qmaze/environment"
)

const trials = 10_000

// frequencies returns the fraction of trials each action was selected in
func frequencies(t *testing.T, values []float64, epsilon float64,
	rng Source) []float64 {
	t.Helper()

	counts := make([]float64, environment.Actions)
	for i := 0; i < trials; i++ {
		a, err := Select(values, epsilon, rng)
		require.NoError(t, err)
		counts[a]++
	}

	for i := range counts {
		counts[i] /= trials
	}
	return counts
}

func TestSelectAllZeroIsUniform(t *testing.T) {
	freq := frequencies(t, []float64{0, 0, 0, 0}, 0.0, NewSource(1))
	for a, f := range freq {
		assert.InDelta(t, 0.25, f, 0.02, environment.Action(a).String())
	}
}

func TestSelectEpsilonOneIsUniform(t *testing.T) {
	freq := frequencies(t, []float64{1, 5, 2, 3}, 1.0, NewSource(2))
	for a, f := range freq {
		assert.InDelta(t, 0.25, f, 0.02, environment.Action(a).String())
	}
}

func TestSelectEpsilonZeroIsGreedy(t *testing.T) {
	rng := NewSource(3)
	for i := 0; i < trials; i++ {
		a, err := Select([]float64{1, 5, 2, 3}, 0.0, rng)
		require.NoError(t, err)
		require.Equal(t, environment.Down, a)
	}
}

func TestSelectEpsilon(t *testing.T) {
	// With ε = 0.2 the greedy action is taken with probability
	// 0.8 + 0.2/4 and each other action with probability 0.2/4
	freq := frequencies(t, []float64{1, 2, 9, 3}, 0.2, NewSource(4))
	assert.InDelta(t, 0.85, freq[environment.Left], 0.02)
	assert.InDelta(t, 0.05, freq[environment.Up], 0.02)
	assert.InDelta(t, 0.05, freq[environment.Down], 0.02)
	assert.InDelta(t, 0.05, freq[environment.Right], 0.02)
}

func TestSelectBreaksNonZeroTies(t *testing.T) {
	freq := frequencies(t, []float64{4, 1, 4, 0}, 0.0, NewSource(5))
	assert.InDelta(t, 0.5, freq[environment.Up], 0.02)
	assert.InDelta(t, 0.5, freq[environment.Left], 0.02)
	assert.Zero(t, freq[environment.Down])
	assert.Zero(t, freq[environment.Right])
}

func TestSelectNegativeGreedy(t *testing.T) {
	a, err := Select([]float64{-1, -3, -0.5, -2}, 0.0, NewSource(6))
	require.NoError(t, err)
	assert.Equal(t, environment.Left, a)
}

// fixedSource replays fixed samples
type fixedSource struct {
	float float64
	ints  []int
	calls int
}

func (f *fixedSource) Float64() float64 {
	return f.float
}

func (f *fixedSource) Intn(n int) int {
	i := f.ints[f.calls%len(f.ints)] % n
	f.calls++
	return i
}

func TestSelectUsesInjectedSource(t *testing.T) {
	// Exploration draw below ε: random branch
	rng := &fixedSource{float: 0.05, ints: []int{3}}
	a, err := Select([]float64{9, 0, 0, 0}, 0.1, rng)
	require.NoError(t, err)
	assert.Equal(t, environment.Right, a)

	// Exploration draw above ε: greedy branch, no choice needed
	rng = &fixedSource{float: 0.5, ints: []int{3}}
	a, err = Select([]float64{9, 0, 0, 0}, 0.1, rng)
	require.NoError(t, err)
	assert.Equal(t, environment.Up, a)
	assert.Zero(t, rng.calls)

	// All zero: random branch regardless of the draw
	rng = &fixedSource{float: 0.99, ints: []int{2}}
	a, err = Select([]float64{0, 0, 0, 0}, 0.0, rng)
	require.NoError(t, err)
	assert.Equal(t, environment.Left, a)
}

func TestSelectInvalidEpsilon(t *testing.T) {
	for _, e := range []float64{-0.1, 1.5} {
		_, err := Select([]float64{0, 0, 0, 0}, e, NewSource(1))
		assert.ErrorIs(t, err, environment.ErrInvalidParameter)

		_, err = NewEGreedy(e, nil, NewSource(1))
		assert.ErrorIs(t, err, environment.ErrInvalidParameter)
	}

	_, err := Select([]float64{0, 0}, 0.1, NewSource(1))
	assert.ErrorIs(t, err, environment.ErrInvalidParameter)
}

// table is a ValueTable with the same action values in every state
type table []float64

func (v table) Values(dst []float64, _ environment.Cell) []float64 {
	copy(dst, v)
	return dst
}

func TestEGreedySelectAction(t *testing.T) {
	p, err := NewEGreedy(0.0, table{0, 0, 0, 7}, NewSource(7))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, environment.Right, p.SelectAction(environment.Cell{}))
	}

	g := NewGreedy(table{0, 3, 0, 0}, NewSource(7))
	assert.Equal(t, 0.0, g.Epsilon())
	assert.Equal(t, environment.Down, g.SelectAction(environment.Cell{}))
}
