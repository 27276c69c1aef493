package ui

import (
	"fmt"

	"aoc-automata/internal/core"
)

// hudLines lays out a parameter snapshot as one header line per group
// followed by indented label/value rows.
func hudLines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, group := range snap.Groups {
		lines = append(lines, "", group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %-11s %s", p.Label, p.Value))
		}
	}
	return lines
}
