// SPDX-License-Identifier: MIT

// Package tableau: gonum interop. The engine keeps its own bounds-safe
// storage (gonum/mat panics on bad indices, which the pivot surface must
// not), so gonum enters and leaves at this boundary only.
package tableau

import (
	"gonum.org/v1/gonum/mat"
)

// ToDense exports the current cells as a fresh gonum dense matrix,
// detached from the tableau. Complexity: O(rows×cols).
func (t *Tableau) ToDense() *mat.Dense {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows, cols := t.cells.Rows(), t.cells.Cols()
	out := mat.NewDense(rows, cols, nil)
	var r, c int
	for r = 0; r < rows; r++ {
		row, _ := t.cells.Row(r)
		for c = 0; c < cols; c++ {
			out.Set(r, c, row[c])
		}
	}

	return out
}

// FromDense constructs a Tableau of the given form and problem size from
// a gonum matrix holding the full coefficient grid (objective row last,
// answer column last).
//
// Shape and finiteness are validated exactly as in New with WithCells:
// ErrDimensionMismatch for a wrong shape, ErrNaNInf for non-finite
// entries. Complexity: O(rows×cols).
func FromDense(numConstraints, numVariables int, form Form, m mat.Matrix, opts ...Option) (*Tableau, error) {
	rows, cols := m.Dims()
	vals := make([][]float64, rows)
	var r, c int
	for r = 0; r < rows; r++ {
		vals[r] = make([]float64, cols)
		for c = 0; c < cols; c++ {
			vals[r][c] = m.At(r, c)
		}
	}

	return New(numConstraints, numVariables, form, append(opts, WithCells(vals))...)
}
