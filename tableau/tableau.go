// SPDX-License-Identifier: MIT

// Package tableau: facade construction and operations.
package tableau

import (
	"fmt"

	"github.com/katalvlaran/lptableau/grid"
	"github.com/katalvlaran/lptableau/history"
	"github.com/katalvlaran/lptableau/ledger"
)

// New constructs a zero-initialized Tableau for numConstraints
// constraints and numVariables decision variables in the given form.
//
// Shape by form (rows = numConstraints + 1, objective row last):
//
//	Simplex: cols = numVariables + numConstraints + 1
//	Tucker:  cols = numVariables + 1
//
// Use WithCells to load coefficients at construction; use WithEpsilon to
// relax the IsMaximized sign tests.
//
// Returns ErrBadSize for non-positive counts, ErrBadForm for an unknown
// form, ErrDimensionMismatch / ErrNaNInf for a bad initial grid.
// Complexity: O(rows×cols).
func New(numConstraints, numVariables int, form Form, opts ...Option) (*Tableau, error) {
	if numConstraints <= 0 || numVariables <= 0 {
		return nil, ErrBadSize
	}

	rows := numConstraints + 1
	var cols int
	var layout ledger.Layout
	switch form {
	case Simplex:
		cols = numVariables + numConstraints + 1
		layout = ledger.LayoutColumns
	case Tucker:
		cols = numVariables + 1
		layout = ledger.LayoutSplit
	default:
		return nil, fmt.Errorf("tableau.New: form %v: %w", form, ErrBadForm)
	}

	cells, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	vars, err := ledger.New(numVariables, numConstraints, cols, rows, layout)
	if err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	if o.cells != nil {
		if err = loadCells(cells, o.cells); err != nil {
			return nil, err
		}
	}

	return &Tableau{
		form:        form,
		constraints: numConstraints,
		decision:    numVariables,
		cells:       cells,
		vars:        vars,
		log:         history.NewLog(),
		eps:         o.eps,
	}, nil
}

// loadCells copies a row-major coefficient grid into cells, validating
// shape and finiteness.
func loadCells(cells *grid.Dense, vals [][]float64) error {
	if len(vals) != cells.Rows() {
		return fmt.Errorf("tableau.New: %d value rows for %d tableau rows: %w", len(vals), cells.Rows(), ErrDimensionMismatch)
	}
	for r, rowVals := range vals {
		if len(rowVals) != cells.Cols() {
			return fmt.Errorf("tableau.New: row %d has %d values for %d columns: %w", r, len(rowVals), cells.Cols(), ErrDimensionMismatch)
		}
		for c, v := range rowVals {
			if err := cells.Set(r, c, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// Form returns the tableau representation. Complexity: O(1).
func (t *Tableau) Form() Form { return t.form }

// Rows returns the number of tableau rows (constraints + objective row).
func (t *Tableau) Rows() int { return t.cells.Rows() }

// Cols returns the number of tableau columns (answer column included).
func (t *Tableau) Cols() int { return t.cells.Cols() }

// NumConstraints returns the constraint count. Complexity: O(1).
func (t *Tableau) NumConstraints() int { return t.constraints }

// NumVariables returns the decision-variable count. Complexity: O(1).
func (t *Tableau) NumVariables() int { return t.decision }

// At reads the cell at (row, col). Returns ErrOutOfRange on invalid
// coordinates. Complexity: O(1).
func (t *Tableau) At(row, col int) (float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.cells.At(row, col)
}

// Set writes the cell at (row, col). Returns ErrOutOfRange on invalid
// coordinates and ErrNaNInf for non-finite values. Complexity: O(1).
func (t *Tableau) Set(row, col int, v float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cells.Set(row, col, v)
}

// Pivot performs one pivot at (row, col) and records it in the history,
// discarding any undone future.
//
// Returns ErrOutOfRange for coordinates outside the tableau and
// ErrZeroPivot for a zero-valued cell. A transform that overflows to
// NaN or ±Inf is rolled back and reported as ErrNaNInf, keeping the
// invariant that no non-finite value ever persists in the cells. In
// every error case nothing is mutated and nothing is recorded.
// Complexity: O(rows×cols).
func (t *Tableau) Pivot(row, col int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.applyPivot(row, col); err != nil {
		return err
	}
	t.log.Record(history.Coord{Row: row, Col: col})

	return nil
}

// applyPivot runs the form-appropriate algebra plus the ledger swap.
// Callers hold the write lock.
func (t *Tableau) applyPivot(row, col int) error {
	p, err := t.cells.At(row, col)
	if err != nil {
		return err
	}
	if p == 0 {
		return fmt.Errorf("tableau: Pivot(%d,%d): %w", row, col, ErrZeroPivot)
	}

	// The algebras write through row views, past Set's finite-value
	// check; snapshot first so an overflowing transform can be undone.
	snap := t.cells.Clone()
	switch t.form {
	case Simplex:
		simplexPivot(t.cells, row, col)
	default:
		tuckerPivot(t.cells, row, col)
	}
	if !t.cells.Finite() {
		t.cells = snap
		return fmt.Errorf("tableau: Pivot(%d,%d): %w", row, col, ErrNaNInf)
	}

	return t.vars.Swap(col, row)
}

// Undo rolls the tableau back one pivot by replaying the recorded
// coordinate through the same algebra. Reports whether a step was
// undone; calling with no applied pivots is a no-op.
// Complexity: O(rows×cols).
func (t *Tableau) Undo() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	coord, ok := t.log.Undo()
	if !ok {
		return false
	}
	// A recorded coordinate is in bounds and its cell is non-zero after
	// its own pivot; only an overflowing replay can fail, and it leaves
	// the cells rolled back, so re-sync the cursor and report no-op.
	if err := t.applyPivot(coord.Row, coord.Col); err != nil {
		_, _ = t.log.Redo()
		return false
	}

	return true
}

// Redo replays one undone pivot. Reports whether a step was replayed;
// calling with an exhausted redo budget is a no-op.
// Complexity: O(rows×cols).
func (t *Tableau) Redo() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	coord, ok := t.log.Redo()
	if !ok {
		return false
	}
	if err := t.applyPivot(coord.Row, coord.Col); err != nil {
		_, _ = t.log.Undo()
		return false
	}

	return true
}

// IsMaximized reports whether the objective row satisfies the form's
// optimality sign convention: every coefficient (answer column excluded)
// is >= 0 for Simplex, <= 0 for Tucker, within the configured epsilon.
// Complexity: O(cols).
func (t *Tableau) IsMaximized() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	obj, _ := t.cells.Row(t.cells.Rows() - 1)
	var c int
	for c = 0; c < len(obj)-1; c++ {
		if t.form == Simplex && obj[c] < -t.eps {
			return false
		}
		if t.form == Tucker && obj[c] > t.eps {
			return false
		}
	}

	return true
}

// IsFeasible is declared but not yet available. It returns the
// historical placeholder value true together with ErrNotImplemented so
// callers can distinguish "not specified" from a real answer.
func (t *Tableau) IsFeasible() (bool, error) {
	return true, fmt.Errorf("tableau: IsFeasible: %w", ErrNotImplemented)
}

// Convert is declared but not yet available: the cross-form conversion
// algebra is intentionally not fabricated. Always returns
// ErrNotImplemented; the receiver is never mutated.
func (t *Tableau) Convert() (*Tableau, error) {
	return nil, fmt.Errorf("tableau: Convert: %w", ErrNotImplemented)
}

// VariableAt returns the label of the variable at combined position pos,
// 0 <= pos < NumVariables()+NumConstraints().
//
// The two forms resolve labels differently, by design: Tucker consults
// the mutable ledger (labels move on every pivot), while Simplex derives
// the label purely from the position — its ledger communicates basic
// status by permutation, not by label placement.
// Complexity: O(1).
func (t *Tableau) VariableAt(pos int) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if pos < 0 || pos >= t.decision+t.constraints {
		return "", fmt.Errorf("tableau: VariableAt(%d): %w", pos, ErrOutOfRange)
	}

	if t.form == Tucker {
		head := t.cells.Cols() - 1 // column-header positions
		if pos < head {
			return t.vars.ColumnLabel(pos)
		}

		return t.vars.RowLabel(pos - head)
	}

	// Simplex: positional derivation. The trailing rows-1 positions are
	// slack variables numbered from the column split point.
	rows, cols := t.cells.Rows(), t.cells.Cols()
	if pos >= cols-rows {
		return fmt.Sprintf("t%d", pos-(cols-rows-1)), nil
	}

	return fmt.Sprintf("x%d", pos+1), nil
}

// Labels returns the current label multiset, column headers first. The
// multiset is invariant under any pivot sequence.
// Complexity: O(cols+rows).
func (t *Tableau) Labels() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.vars.Labels()
}

// Snapshot materializes the current cells as a fresh [][]float64.
// Complexity: O(rows×cols).
func (t *Tableau) Snapshot() [][]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.cells.Snapshot()
}

// History returns a copy of every pivot coordinate ever recorded, the
// undone tail included. Complexity: O(n).
func (t *Tableau) History() []history.Coord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.log.Steps()
}

// Applied returns the number of currently applied pivots (the history
// cursor). Complexity: O(1).
func (t *Tableau) Applied() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.log.Cursor()
}

// Redoable returns the remaining redo budget. Complexity: O(1).
func (t *Tableau) Redoable() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.log.Redoable()
}

// Clone returns an independent deep copy: cells, ledger and history.
// Complexity: O(rows×cols + n).
func (t *Tableau) Clone() *Tableau {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return &Tableau{
		form:        t.form,
		constraints: t.constraints,
		decision:    t.decision,
		cells:       t.cells.Clone(),
		vars:        t.vars.Clone(),
		log:         t.log.Clone(),
		eps:         t.eps,
	}
}
