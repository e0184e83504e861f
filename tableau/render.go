// SPDX-License-Identifier: MIT

// Package tableau: plain-text rendering for display layers.
package tableau

import (
	"strconv"
	"strings"
)

// Render markers for the separator column and separator row.
const (
	renderColSep = "|"
	renderRowSep = "---"
)

// Render produces the display grid: one string per cell in shortest
// round-trip notation, with a separator column inserted before the
// answer column and a separator row inserted above the objective row.
// The result is (rows+1)×(cols+1) strings and is fully detached from
// the tableau. Complexity: O(rows×cols).
func (t *Tableau) Render() [][]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows, cols := t.cells.Rows(), t.cells.Cols()
	out := make([][]string, 0, rows+1)

	var r, c int
	for r = 0; r < rows; r++ {
		if r == rows-1 {
			sep := make([]string, cols+1)
			for c = range sep {
				sep[c] = renderRowSep
			}
			out = append(out, sep)
		}

		cells, _ := t.cells.Row(r)
		line := make([]string, 0, cols+1)
		for c = 0; c < cols; c++ {
			if c == cols-1 {
				line = append(line, renderColSep)
			}
			line = append(line, strconv.FormatFloat(cells[c], 'g', -1, 64))
		}
		out = append(out, line)
	}

	return out
}

// String implements fmt.Stringer: the Render grid joined with single
// spaces and newlines. Complexity: O(rows×cols).
func (t *Tableau) String() string {
	rendered := t.Render()
	lines := make([]string, len(rendered))
	for i, row := range rendered {
		lines[i] = strings.Join(row, " ")
	}

	return strings.Join(lines, "\n")
}
