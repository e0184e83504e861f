// Package tableau implements an interactive linear-programming pivot
// engine over a dense coefficient tableau, in either of two equivalent
// representations.
//
// The tableau package provides:
//
//   - Tableau, composing the dense cell grid, the variable ledger and a
//     linear undo/redo history behind one thread-safe facade.
//   - Two pivot algebras sharing one contract: the Simplex form
//     (Gauss–Jordan row reduction on the wide tableau) and the Tucker
//     form (full-tableau exchange transform on the compact tableau).
//     The pivot coordinate is always chosen by the caller; there is no
//     automatic pivot selection.
//   - Undo/redo by replaying the recorded pivot coordinate through the
//     same algebra — a linear, branch-discarding history.
//   - Maximization predicates with the dual sign conventions of the two
//     forms: Simplex is maximized when every objective-row coefficient
//     is >= 0, Tucker when every one is <= 0.
//   - Display-grid rendering and gonum/mat interop.
//
// A pivot on a zero-valued cell is a defined no-op: the engine returns
// ErrZeroPivot, mutates nothing and records nothing. Out-of-range
// coordinates surface ErrOutOfRange instead of corrupting state.
// Conversion between forms and the feasibility test are declared but not
// yet available; both report ErrNotImplemented so callers can tell
// "not specified" apart from a silently wrong answer.
//
// Every operation is O(rows×cols) or cheaper and runs to completion
// under the instance lock; a Tableau may be shared across goroutines.
package tableau
