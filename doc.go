// Package lptableau is your in-memory workbench for solving
// linear-programming maximization problems by hand — pick a pivot, watch
// the tableau transform, undo, redo, try again.
//
// 🚀 What is lptableau?
//
//	A small, deterministic, thread-safe pivot engine that brings together:
//		• Dense storage: a bounds-checked row-major cell grid (no panics, no NaN/Inf)
//		• Two pivot algebras: Simplex (Gauss–Jordan) and Tucker (exchange transform)
//		• Variable bookkeeping: a two-region label ledger swapped on every pivot
//		• Linear history: undo/redo by replaying the recorded pivot coordinate
//		• Dual optimality tests: objective row >= 0 (Simplex) vs <= 0 (Tucker)
//
// ✨ Why choose lptableau?
//
//   - Caller-driven – you choose every pivot; no automatic pivot selection,
//     no Big-M, no two-phase machinery hiding the algebra from you
//   - Rock-solid guarantees – sentinel errors for every misuse, a defined
//     no-op for zero pivots, one lock scope per tableau instance
//   - Presentation-agnostic – a string display grid and gonum export are
//     the only outward surfaces; any front end can drive the engine
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/    — dense row-major float64 storage with safe accessors
//	ledger/  — column-header / row-header variable labels and the pivot swap
//	history/ — the (cursor, redo budget) state machine over the pivot log
//	tableau/ — the facade: forms, pivot algebras, undo/redo, rendering, gonum interop
//
// Quick example (wide Simplex form, one constraint, maximize x1 + 2·x2):
//
//	 x1  x2  t1 | ans              x1  x2  t1 | ans
//	  1   1   1 |  4   pivot(0,1)   1   1   1 |  4
//	 -1  -2   0 |  0   ─────────►   1   0   2 |  8
//
// The objective row turns non-negative, so IsMaximized flips to true.
// Start with tableau.New, then Pivot / Undo / Redo your way to the
// optimum.
//
//	go get github.com/katalvlaran/lptableau/tableau
package lptableau
