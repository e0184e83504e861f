package ledger

import "errors"

var (
	// ErrBadCount indicates a non-positive decision or slack variable count.
	ErrBadCount = errors.New("ledger: variable counts must be > 0")

	// ErrBadCapacity indicates the requested slot regions cannot hold all labels.
	ErrBadCapacity = errors.New("ledger: slot regions too small for label set")

	// ErrBadLayout indicates an unknown Layout value.
	ErrBadLayout = errors.New("ledger: unknown layout")

	// ErrOutOfRange indicates a slot index outside the column or row region.
	ErrOutOfRange = errors.New("ledger: slot index out of range")
)
