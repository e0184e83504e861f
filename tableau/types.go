// SPDX-License-Identifier: MIT

// Package tableau: domain types. The Form enum and the Tableau facade
// struct live here; construction is in tableau.go, the pivot algebras in
// pivot.go.
package tableau

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lptableau/grid"
	"github.com/katalvlaran/lptableau/history"
	"github.com/katalvlaran/lptableau/ledger"
)

// Form selects the tableau representation. It is fixed for the lifetime
// of a Tableau; converting produces a new instance.
type Form uint8

const (
	// Simplex is the wide layout: one column per decision variable, per
	// slack variable, plus the answer column. Maximized when every
	// objective-row coefficient (answer column excluded) is >= 0.
	Simplex Form = iota

	// Tucker is the compact layout: one column per decision variable
	// plus the answer column; slack variables head the constraint rows.
	// Maximized when every objective-row coefficient is <= 0 — the
	// mirror image of the Simplex convention, reflecting the dual
	// relationship between the two forms.
	Tucker
)

// String implements fmt.Stringer for diagnostics.
func (f Form) String() string {
	switch f {
	case Simplex:
		return "Simplex"
	case Tucker:
		return "Tucker"
	default:
		return fmt.Sprintf("Form(%d)", uint8(f))
	}
}

// Tableau is the pivot-engine facade: a dense cell grid, the variable
// ledger and a linear undo/redo history behind a single mutex scope.
//
// The last row is the objective row; the last column is the answer
// column. All coordinates are 0-based. A Tableau is safe for concurrent
// use; every operation runs to completion under mu.
type Tableau struct {
	mu sync.RWMutex

	form        Form
	constraints int // number of constraint rows (rows - 1)
	decision    int // number of decision variables

	cells *grid.Dense
	vars  *ledger.Ledger
	log   *history.Log

	eps float64 // IsMaximized tolerance; 0 means exact sign tests
}
