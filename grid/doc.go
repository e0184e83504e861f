// Package grid provides the dense numeric storage backing a pivot tableau.
//
// The grid package provides:
//
//   - Dense, a row-major float64 grid with O(1) bounds-checked cell access.
//   - A strict numeric policy: Set rejects NaN and ±Inf. Row views write
//     to storage directly and bypass that check, so view writers own the
//     policy; Finite scans the grid so they can re-establish it after a
//     bulk transform.
//   - Clone for independent snapshots and Row for no-copy row views used
//     by hot pivot loops.
//
// All public accessors return sentinel errors instead of panicking;
// callers match them with errors.Is. See errors.go for the full set.
package grid
