// Package qtable implements a tabular state-action value function over the
// cells of a grid
package qtable

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/qmaze/environment"
)

// QTable maps every (cell, action) pair of an r x c grid to a value
// estimate. Every estimate starts at 0.0.
//
// Values are stored in a matrix with one row per cell, in row-major cell
// order, and one column per action.
type QTable struct {
	r, c   int
	values *mat.Dense
}

// New returns a QTable for a grid with r rows and c columns
func New(r, c int) (*QTable, error) {
	if r < 1 || c < 1 {
		return nil, environment.InvalidParameter("new: table dimensions "+
			"must be positive, have %dx%d", r, c)
	}
	return &QTable{r, c, mat.NewDense(r*c, environment.Actions, nil)}, nil
}

// Dims returns the number of rows and columns of the grid the table
// covers
func (q *QTable) Dims() (r, c int) {
	return q.r, q.c
}

// Value returns the current estimate for taking action a in state
func (q *QTable) Value(state environment.Cell, a environment.Action) float64 {
	return q.values.At(q.row(state), q.col(a))
}

// BestValue returns the maximum estimate over all actions in state
func (q *QTable) BestValue(state environment.Cell) float64 {
	return floats.Max(q.values.RawRowView(q.row(state)))
}

// Values copies the estimates of every action in state into dst, indexed
// by environment.Action, and returns dst. If dst is nil, a new slice is
// allocated.
func (q *QTable) Values(dst []float64, state environment.Cell) []float64 {
	if dst == nil {
		dst = make([]float64, environment.Actions)
	}
	copy(dst, q.values.RawRowView(q.row(state)))
	return dst
}

// Update overwrites the estimate for taking action a in state. Update
// panics if value is not finite.
func (q *QTable) Update(state environment.Cell, a environment.Action,
	value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(environment.OutOfRange("update: non-finite value %v for %v "+
			"at %v", value, a, state))
	}
	q.values.Set(q.row(state), q.col(a), value)
}

// Greedy returns the first action with the highest estimate in state
func (q *QTable) Greedy(state environment.Cell) environment.Action {
	return environment.Action(floats.MaxIdx(q.values.RawRowView(q.row(state))))
}

// Matrix returns a read-only view of the underlying value matrix
func (q *QTable) Matrix() mat.Matrix {
	return q.values
}

// row returns the matrix row of a cell, panicking with an error wrapping
// environment.ErrOutOfRange if the cell is outside of the grid
func (q *QTable) row(state environment.Cell) int {
	if !state.In(q.r, q.c) {
		panic(environment.OutOfRange("qtable: state %v outside of %dx%d "+
			"grid", state, q.r, q.c))
	}
	return state.Index(q.c)
}

func (q *QTable) col(a environment.Action) int {
	if !a.Valid() {
		panic(environment.OutOfRange("qtable: no such action %d", int(a)))
	}
	return int(a)
}

// String returns the best value of each cell, formatted as a matrix
func (q *QTable) String() string {
	best := mat.NewDense(q.r, q.c, nil)
	for i := 0; i < q.r*q.c; i++ {
		c := environment.CellAt(i, q.c)
		best.Set(c.Row, c.Col, q.BestValue(c))
	}
	fa := mat.Formatted(best, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// snapshot is the serialized form of a QTable
type snapshot struct {
	Rows, Cols int
	Values     []float64
}

// GobEncode implements the gob.GobEncoder interface
func (q *QTable) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	s := snapshot{q.r, q.c, q.values.RawMatrix().Data}
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("gobEncode: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface
func (q *QTable) GobDecode(data []byte) error {
	var s snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("gobDecode: %w", err)
	}

	if s.Rows < 1 || s.Cols < 1 ||
		len(s.Values) != s.Rows*s.Cols*environment.Actions {
		return fmt.Errorf("gobDecode: %d values do not fit a %dx%d table",
			len(s.Values), s.Rows, s.Cols)
	}

	q.r, q.c = s.Rows, s.Cols
	q.values = mat.NewDense(s.Rows*s.Cols, environment.Actions, s.Values)
	return nil
}

// Save saves the QTable to a file
func (q *QTable) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not create file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(q); err != nil {
		return fmt.Errorf("save: could not encode table: %w", err)
	}
	return nil
}

// Load loads a QTable previously saved with Save
func Load(filename string) (*QTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load: could not open file: %w", err)
	}
	defer file.Close()

	q := &QTable{}
	if err := gob.NewDecoder(file).Decode(q); err != nil {
		return nil, fmt.Errorf("load: could not decode table: %w", err)
	}
	return q, nil
}
