package main

import (
	"strings"

	"github.com/logrusorgru/aurora"

	env "github.com/samuelfneumann/qmaze/environment"
)

// render draws layout with the cells of path marked by '*'
func render(layout *env.Layout, path []env.Cell, color bool) string {
	au := aurora.NewAurora(color)

	onPath := make(map[env.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	rows, cols := layout.Dims()
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := env.Cell{Row: r, Col: c}
			symbol := string(layout.Kind(cell).Symbol())

			switch kind := layout.Kind(cell); {
			case kind == env.Start:
				b.WriteString(au.Bold(au.Green(symbol)).String())
			case kind == env.Goal:
				b.WriteString(au.Bold(au.Red(symbol)).String())
			case kind == env.Barrier:
				b.WriteString(au.Blue(symbol).String())
			case onPath[cell]:
				b.WriteString(au.Yellow("*").String())
			default:
				b.WriteString(symbol)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
