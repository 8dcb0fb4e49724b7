package environment

import (
	"bufio"
	"io"
	"strings"
)

// Layout is a validated, immutable rectangular maze layout. A Layout has
// exactly one Start cell and exactly one Goal cell.
type Layout struct {
	rows, cols int
	kinds      []Kind // row-major
	start      Cell
	goal       Cell
}

// NewLayout validates and returns a new Layout from a grid of cell kinds.
// The grid is indexed as grid[row][col] and must be rectangular.
func NewLayout(grid [][]Kind) (*Layout, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, InvalidLayout("newLayout: layout has no cells")
	}

	rows, cols := len(grid), len(grid[0])
	kinds := make([]Kind, 0, rows*cols)
	var starts, goals []Cell

	for r, row := range grid {
		if len(row) != cols {
			return nil, InvalidLayout("newLayout: row %d has %d columns, "+
				"want %d", r, len(row), cols)
		}

		for c, kind := range row {
			switch kind {
			case Start:
				starts = append(starts, Cell{r, c})
			case Goal:
				goals = append(goals, Cell{r, c})
			case Free, Barrier:
			default:
				return nil, InvalidLayout("newLayout: unknown cell kind %v "+
					"at %v", kind, Cell{r, c})
			}
			kinds = append(kinds, kind)
		}
	}

	if len(starts) != 1 {
		return nil, InvalidLayout("newLayout: want 1 start cell, have %d",
			len(starts))
	}
	if len(goals) != 1 {
		return nil, InvalidLayout("newLayout: want 1 goal cell, have %d",
			len(goals))
	}

	return &Layout{
		rows:  rows,
		cols:  cols,
		kinds: kinds,
		start: starts[0],
		goal:  goals[0],
	}, nil
}

// ParseLayout reads a Layout from text. Each non-blank line is one row of
// the grid, using the symbols
//
//	.	free cell
//	#	barrier
//	S	start cell
//	G	goal cell
//
// Surrounding whitespace on a line is ignored.
func ParseLayout(r io.Reader) (*Layout, error) {
	var grid [][]Kind

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		row := make([]Kind, 0, len(text))
		for _, symbol := range text {
			switch symbol {
			case '.':
				row = append(row, Free)
			case '#':
				row = append(row, Barrier)
			case 'S':
				row = append(row, Start)
			case 'G':
				row = append(row, Goal)
			default:
				return nil, InvalidLayout("parseLayout: line %d: unknown "+
					"symbol %q", line, symbol)
			}
		}
		grid = append(grid, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, InvalidLayout("parseLayout: could not read layout: %v",
			err)
	}

	return NewLayout(grid)
}

// Dims returns the number of rows and columns in the layout
func (l *Layout) Dims() (r, c int) {
	return l.rows, l.cols
}

// Kind returns the kind of the argument cell. Kind panics with an error
// wrapping ErrOutOfRange if the cell is outside of the grid.
func (l *Layout) Kind(c Cell) Kind {
	if !c.In(l.rows, l.cols) {
		panic(OutOfRange("kind: cell %v outside of %dx%d grid", c, l.rows,
			l.cols))
	}
	return l.kinds[c.Index(l.cols)]
}

// Passable returns whether an agent may occupy the argument cell. Cells
// outside of the grid are not passable.
func (l *Layout) Passable(c Cell) bool {
	return c.In(l.rows, l.cols) && l.kinds[c.Index(l.cols)] != Barrier
}

// Start returns the start cell of the layout
func (l *Layout) Start() Cell {
	return l.start
}

// Goal returns the goal cell of the layout
func (l *Layout) Goal() Cell {
	return l.goal
}

// String renders the layout in the text format read by ParseLayout
func (l *Layout) String() string {
	var b strings.Builder
	for i, kind := range l.kinds {
		b.WriteRune(kind.Symbol())
		if (i+1)%l.cols == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
