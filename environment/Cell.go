package environment

import "fmt"

// Cell is a (row, column) coordinate in a grid. Row 0 is the top row.
type Cell struct {
	Row, Col int
}

// Index returns the row-major index of the cell in a grid with c columns
func (c Cell) Index(cols int) int {
	return c.Row*cols + c.Col
}

// CellAt returns the cell with row-major index i in a grid with c columns
func CellAt(i, cols int) Cell {
	return Cell{Row: i / cols, Col: i % cols}
}

// In returns whether the cell lies within a grid of r rows and c columns
func (c Cell) In(r, cols int) bool {
	return c.Row >= 0 && c.Row < r && c.Col >= 0 && c.Col < cols
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Action is one of the four moves available in every cell
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
)

// Actions is the number of actions available in every cell
const Actions int = 4

// AllActions lists every Action in index order
var AllActions = [Actions]Action{Up, Down, Left, Right}

// Valid returns whether a is one of the four moves
func (a Action) Valid() bool {
	return a >= Up && a <= Right
}

// Offset returns the change in row and column that the action produces
func (a Action) Offset() (dr, dc int) {
	switch a {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	panic(OutOfRange("offset: no such action %d", int(a)))
}

// Apply returns the cell adjacent to c in the direction of a. The returned
// cell may lie outside of the grid.
func (a Action) Apply(c Cell) Cell {
	dr, dc := a.Offset()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Kind describes what occupies a cell of a layout
type Kind int

const (
	Free Kind = iota
	Barrier
	Start
	Goal
)

// Symbol returns the layout text symbol of the kind
func (k Kind) Symbol() rune {
	switch k {
	case Barrier:
		return '#'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	default:
		return '.'
	}
}

func (k Kind) String() string {
	switch k {
	case Free:
		return "Free"
	case Barrier:
		return "Barrier"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
