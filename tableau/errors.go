// SPDX-License-Identifier: MIT

// Package tableau: sentinel error set.
// All facade operations return these sentinels (wrapped with call-site
// context where useful); callers match them via errors.Is. Grid-level
// sentinels are re-exported as aliases so downstream code can depend on
// this package alone.
package tableau

import (
	"errors"

	"github.com/katalvlaran/lptableau/grid"
)

var (
	// ErrBadSize indicates a non-positive constraint or variable count.
	ErrBadSize = errors.New("tableau: constraint and variable counts must be > 0")

	// ErrBadForm indicates an unknown Form value.
	ErrBadForm = errors.New("tableau: unknown form")

	// ErrZeroPivot reports an attempted pivot on a zero-valued cell.
	// The pivot is a defined no-op: cells, ledger and history are
	// untouched. The sentinel is a recoverable warning, not a fault.
	ErrZeroPivot = errors.New("tableau: pivot cell is zero")

	// ErrDimensionMismatch indicates that an initial cell grid does not
	// match the tableau shape implied by the form and problem size.
	ErrDimensionMismatch = errors.New("tableau: cell grid dimension mismatch")

	// ErrNotImplemented marks a declared but intentionally unsupported
	// operation (Convert, IsFeasible).
	ErrNotImplemented = errors.New("tableau: operation not implemented")
)

// Aliases for grid-level sentinels, kept so errors.Is matches through
// either package.

// ErrOutOfRange reports a row/column index outside the tableau bounds.
var ErrOutOfRange = grid.ErrOutOfRange

// ErrNaNInf reports a non-finite value where a finite one is required.
var ErrNaNInf = grid.ErrNaNInf
