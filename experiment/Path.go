package experiment

import (
	env "github.com/samuelfneumann/qmaze/environment"
)

// GreedyTable is a table of action values that a greedy path can be
// followed through
type GreedyTable interface {
	// Greedy returns the action with the highest value in state
	Greedy(state env.Cell) env.Action
}

// GreedyPath follows the greedy action of table from the start cell of e
// and returns the cells visited, starting with the start cell. The path
// stops when the goal is reached, when a cell would be visited twice, or
// after limit steps. The boolean return value reports whether the path
// reached the goal.
func GreedyPath(e env.Environment, table GreedyTable,
	limit int) ([]env.Cell, bool) {
	state := e.Reset()
	path := []env.Cell{state}
	visited := map[env.Cell]bool{state: true}

	for i := 0; i < limit; i++ {
		next, _, last := e.Step(state, table.Greedy(state))
		if visited[next] {
			return path, false
		}

		path = append(path, next)
		if last {
			return path, true
		}
		visited[next] = true
		state = next
	}
	return path, false
}
