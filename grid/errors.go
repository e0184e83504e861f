// SPDX-License-Identifier: MIT

// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors. All grid methods
// return these sentinels (optionally wrapped with call-site context via
// fmt.Errorf("...: %w", ...)) and tests check them via errors.Is. No
// method panics on user-triggered error conditions.
package grid

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows <= 0
	// or cols <= 0). New must validate before allocation.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is
	// required. Set enforces this on every write, so a Dense can never
	// persist a non-finite cell.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")
)
