// Package policy implements tabular policies which select actions from the
// action values of a state
package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qmaze/environment"
)

// Source is a source of uniform random numbers. *rand.Rand from
// golang.org/x/exp/rand satisfies Source.
type Source interface {
	// Float64 returns a uniform sample in [0, 1)
	Float64() float64

	// Intn returns a uniform choice among 0, 1, ..., n-1
	Intn(n int) int
}

// NewSource returns a seeded Source
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ValueTable is a table of action values that a policy reads from
type ValueTable interface {
	// Values copies the value of each action in state into dst, indexed
	// by environment.Action
	Values(dst []float64, state environment.Cell) []float64
}
