// SPDX-License-Identifier: MIT

// Package tableau: the two pivot algebras.
//
// Both procedures share one contract: given a non-zero pivot cell at
// (row, col), transform every cell of the grid and then exchange the
// ledger labels of column col and row row. The caller (applyPivot)
// guards the zero-pivot no-op and the bounds check, so the procedures
// here may assume a valid, non-zero pivot.
//
// Sequencing rule for both: no read may observe a value already
// transformed by the same pivot. The Simplex pass achieves this by
// capturing each row's multiplier before touching that row; the Tucker
// pass additionally snapshots the pivot row, because it rewrites the
// pivot column and the pivot row with formulas over pre-pivot values.
package tableau

import "github.com/katalvlaran/lptableau/grid"

// simplexPivot performs Gauss–Jordan row reduction at (row, col).
//
// Algorithm:
//  1. Divide the pivot row by the pivot value; the pivot cell becomes 1.
//  2. For every other row r, capture m = cells[r][col] and subtract
//     m × pivotRow from row r, zeroing the pivot column outside the
//     pivot row. Rows are independent, so elimination order is free.
//
// Complexity: O(rows×cols).
func simplexPivot(cells *grid.Dense, row, col int) {
	pr, _ := cells.Row(row)
	p := pr[col]

	var c int
	for c = range pr {
		pr[c] /= p
	}

	var r int
	for r = 0; r < cells.Rows(); r++ {
		if r == row {
			continue
		}
		rr, _ := cells.Row(r)
		m := rr[col] // captured before any mutation of this row
		if m == 0 {
			continue
		}
		for c = range rr {
			rr[c] -= m * pr[c]
		}
	}
}

// tuckerPivot performs the full-tableau exchange transform at (row, col).
//
// With p the pivot value and all right-hand operands pre-pivot values:
//
//	r != row, c != col:  cells[r][c] -= cells[r][col]·cells[row][c]/p
//	r != row, c == col:  cells[r][col] = -cells[r][col]/p
//	r == row, c != col:  cells[row][c] = cells[row][c]/p
//	r == row, c == col:  cells[row][col] = 1/p
//
// The pivot row is snapshotted up front so the other-row pass never
// observes an already-transformed value. Applying the transform twice at
// the same coordinate restores the original tableau (the exchange is an
// involution), which is what undo relies on.
//
// Complexity: O(rows×cols), plus O(cols) scratch for the snapshot.
func tuckerPivot(cells *grid.Dense, row, col int) {
	pr, _ := cells.Row(row)
	p := pr[col]

	orig := make([]float64, len(pr))
	copy(orig, pr)

	var r, c int
	for r = 0; r < cells.Rows(); r++ {
		if r == row {
			continue
		}
		rr, _ := cells.Row(r)
		m := rr[col] // pre-pivot pivot-column entry of this row
		for c = range rr {
			if c == col {
				continue
			}
			rr[c] -= m * orig[c] / p
		}
		rr[col] = -m / p
	}

	for c = range pr {
		if c == col {
			continue
		}
		pr[c] = orig[c] / p
	}
	pr[col] = 1 / p
}
