// SPDX-License-Identifier: MIT

package history

import "fmt"

// Coord is a 0-based (row, column) pivot coordinate.
type Coord struct {
	Row int
	Col int
}

// String implements fmt.Stringer for diagnostics.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Log is a linear pivot history with undo/redo counters.
//
// Invariants maintained by every method:
//   - 0 <= cursor <= len(steps)
//   - 0 <= redoable <= len(steps) - cursor
//
// Steps before cursor are applied; steps at and after cursor are the
// undone future, of which only the first redoable may be replayed.
// The zero value is an empty, ready-to-use Log.
type Log struct {
	steps    []Coord // append-only record of every pivot ever performed
	cursor   int     // current position in time
	redoable int     // consecutive undone steps eligible for redo
}

// NewLog returns an empty Log (cursor 0, no redo budget).
func NewLog() *Log { return &Log{} }

// Record appends coord at the cursor, discarding any previously undone
// future, advances the cursor and resets the redo budget. Call it only
// after a pivot actually mutated state (zero-pivot no-ops are never
// recorded). Complexity: amortized O(1).
func (l *Log) Record(coord Coord) {
	l.steps = append(l.steps[:l.cursor], coord)
	l.cursor++
	l.redoable = 0
}

// Undo steps the cursor back one pivot. It returns the coordinate the
// caller must replay to roll the tableau back, and true, when a step was
// available; otherwise the zero Coord and false. The undone entry stays
// in the log so Redo can replay it. Complexity: O(1).
func (l *Log) Undo() (Coord, bool) {
	if l.cursor == 0 {
		return Coord{}, false
	}
	l.cursor--
	l.redoable++

	return l.steps[l.cursor], true
}

// Redo replays one undone pivot if the budget allows. It returns the
// coordinate the caller must replay forward, and true, when a step was
// available; otherwise the zero Coord and false. Complexity: O(1).
func (l *Log) Redo() (Coord, bool) {
	if l.redoable == 0 {
		return Coord{}, false
	}
	coord := l.steps[l.cursor]
	l.cursor++
	l.redoable--

	return coord, true
}

// Len returns the total number of recorded steps, undone ones included.
func (l *Log) Len() int { return len(l.steps) }

// Cursor returns the current position in time: the number of applied steps.
func (l *Log) Cursor() int { return l.cursor }

// Redoable returns the remaining redo budget.
func (l *Log) Redoable() int { return l.redoable }

// Steps returns a copy of the full recorded sequence.
// Complexity: O(n).
func (l *Log) Steps() []Coord {
	out := make([]Coord, len(l.steps))
	copy(out, l.steps)

	return out
}

// Clone returns an independent deep copy of the Log.
// Complexity: O(n).
func (l *Log) Clone() *Log {
	cp := &Log{
		steps:    make([]Coord, len(l.steps)),
		cursor:   l.cursor,
		redoable: l.redoable,
	}
	copy(cp.steps, l.steps)

	return cp
}

// Reset drops the whole history, returning the Log to its initial state.
func (l *Log) Reset() {
	l.steps = l.steps[:0]
	l.cursor = 0
	l.redoable = 0
}
