// Package maze generates maze layouts using GoMaze
package maze

import (
	"fmt"

	"github.com/samuelfneumann/gomaze"

	"github.com/samuelfneumann/qmaze/environment"
)

// Generate returns a perfect maze with rows x cols rooms, laid out on a
// (2*rows+1) x (2*cols+1) grid where every wall is a barrier cell. The
// start is the top-left room and the goal the bottom-right room. Passages
// are carved with Wilson's algorithm so that every maze over the rooms is
// equally likely.
func Generate(rows, cols int, seed uint64) (*environment.Layout, error) {
	return GenerateWith(rows, cols, gomaze.NewWilson(int64(seed)))
}

// GenerateWith returns a maze with rows x cols rooms whose passages are
// carved by init
func GenerateWith(rows, cols int, init gomaze.Initer) (*environment.Layout,
	error) {
	if rows < 1 || cols < 1 {
		return nil, environment.InvalidLayout("generate: need at least one "+
			"room, have %dx%d", rows, cols)
	}
	if rows == 1 && cols == 1 {
		return nil, environment.InvalidLayout("generate: a single room " +
			"cannot hold distinct start and goal cells")
	}

	g := gomaze.NewGrid(rows, cols)
	if err := init.Init(g); err != nil {
		return nil, fmt.Errorf("generate: could not carve maze: %w", err)
	}

	grid := make([][]environment.Kind, 2*rows+1)
	for i := range grid {
		grid[i] = make([]environment.Kind, 2*cols+1)
		for j := range grid[i] {
			grid[i][j] = environment.Barrier
		}
	}

	// Room (r, c) sits at (2r+1, 2c+1); the wall to its east or south is
	// opened when the rooms are linked
	for _, room := range g.Cells() {
		r, c := 2*room.Row()+1, 2*room.Col()+1
		grid[r][c] = environment.Free
		if room.CanMoveEast() {
			grid[r][c+1] = environment.Free
		}
		if room.CanMoveSouth() {
			grid[r+1][c] = environment.Free
		}
	}

	grid[1][1] = environment.Start
	grid[2*rows-1][2*cols-1] = environment.Goal

	return environment.NewLayout(grid)
}
