// Package history implements the linear undo/redo log for pivot
// operations.
//
// A Log is an append-only sequence of pivot coordinates plus two
// counters: a cursor marking the current position in time and a redo
// budget counting how many undone steps may still be replayed forward.
// Recording a new step while undone steps are pending discards that
// future — this is deliberately a linear history, not a branching undo
// tree.
//
// The Log stores coordinates only. Moving through time is driven by the
// caller: Undo and Redo hand back the coordinate whose pivot must be
// replayed (pivoting at the same coordinate again is the undo mechanism)
// and report whether a step was available. Boundary calls — undo with an
// empty past, redo with an exhausted budget — are defined no-ops.
package history
