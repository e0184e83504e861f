// SPDX-License-Identifier: MIT

package ledger

import "fmt"

// Layout selects where the label set starts out.
type Layout uint8

const (
	// LayoutColumns places every label (decision then slack) on the column
	// region; the row region starts empty.
	LayoutColumns Layout = iota

	// LayoutSplit places decision labels on the column region and slack
	// labels on the row region.
	LayoutSplit
)

// String implements fmt.Stringer for diagnostics.
func (l Layout) String() string {
	switch l {
	case LayoutColumns:
		return "Columns"
	case LayoutSplit:
		return "Split"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// Ledger is the two-region variable-label array. The zero value is not
// usable; construct via New.
type Ledger struct {
	cols []string // column-header slots; "" marks an unlabeled slot
	rows []string // row-header slots; "" marks an unlabeled slot
}

// label renders the historical text for combined slot k: decision slots
// are "x<k+1>", slack slots "t<k+1>". The slack index deliberately
// continues the decision numbering (slot index + 1, not slack ordinal).
func label(slot, numDecision int) string {
	if slot < numDecision {
		return fmt.Sprintf("x%d", slot+1)
	}

	return fmt.Sprintf("t%d", slot+1)
}

// New builds a Ledger holding numDecision decision labels and numSlack
// slack labels, distributed over colSlots column slots and rowSlots row
// slots according to layout.
//
// Returns ErrBadCount for non-positive counts, ErrBadCapacity when the
// chosen layout cannot fit its labels, ErrBadLayout for an unknown layout.
// Complexity: O(colSlots + rowSlots).
func New(numDecision, numSlack, colSlots, rowSlots int, layout Layout) (*Ledger, error) {
	if numDecision <= 0 || numSlack <= 0 {
		return nil, ErrBadCount
	}
	if colSlots < 0 || rowSlots < 0 {
		return nil, ErrBadCapacity
	}

	ld := &Ledger{
		cols: make([]string, colSlots),
		rows: make([]string, rowSlots),
	}

	total := numDecision + numSlack
	switch layout {
	case LayoutColumns:
		if colSlots < total {
			return nil, fmt.Errorf("ledger.New: %d labels into %d column slots: %w", total, colSlots, ErrBadCapacity)
		}
		for s := 0; s < total; s++ {
			ld.cols[s] = label(s, numDecision)
		}
	case LayoutSplit:
		if colSlots < numDecision || rowSlots < numSlack {
			return nil, fmt.Errorf("ledger.New: %d+%d labels into %d/%d slots: %w", numDecision, numSlack, colSlots, rowSlots, ErrBadCapacity)
		}
		for s := 0; s < numDecision; s++ {
			ld.cols[s] = label(s, numDecision)
		}
		for s := 0; s < numSlack; s++ {
			ld.rows[s] = label(numDecision+s, numDecision)
		}
	default:
		return nil, ErrBadLayout
	}

	return ld, nil
}

// ColumnSlots returns the size of the column region. Complexity: O(1).
func (l *Ledger) ColumnSlots() int { return len(l.cols) }

// RowSlots returns the size of the row region. Complexity: O(1).
func (l *Ledger) RowSlots() int { return len(l.rows) }

// ColumnLabel returns the label heading column slot i ("" if unlabeled).
// Returns ErrOutOfRange on an invalid slot. Complexity: O(1).
func (l *Ledger) ColumnLabel(i int) (string, error) {
	if i < 0 || i >= len(l.cols) {
		return "", fmt.Errorf("ledger.ColumnLabel(%d): %w", i, ErrOutOfRange)
	}

	return l.cols[i], nil
}

// RowLabel returns the label heading row slot i ("" if unlabeled).
// Returns ErrOutOfRange on an invalid slot. Complexity: O(1).
func (l *Ledger) RowLabel(i int) (string, error) {
	if i < 0 || i >= len(l.rows) {
		return "", fmt.Errorf("ledger.RowLabel(%d): %w", i, ErrOutOfRange)
	}

	return l.rows[i], nil
}

// Swap exchanges the label on column slot col with the label on row slot
// row. This is the ledger half of a pivot; swapping the same pair twice
// restores the original assignment. Returns ErrOutOfRange when either
// slot is invalid; the ledger is unchanged on error. Complexity: O(1).
func (l *Ledger) Swap(col, row int) error {
	if col < 0 || col >= len(l.cols) {
		return fmt.Errorf("ledger.Swap(col=%d): %w", col, ErrOutOfRange)
	}
	if row < 0 || row >= len(l.rows) {
		return fmt.Errorf("ledger.Swap(row=%d): %w", row, ErrOutOfRange)
	}
	l.cols[col], l.rows[row] = l.rows[row], l.cols[col]

	return nil
}

// Labels returns every non-empty label, column region first, then row
// region, in slot order. The returned slice is a copy.
// Complexity: O(colSlots + rowSlots).
func (l *Ledger) Labels() []string {
	out := make([]string, 0, len(l.cols)+len(l.rows))
	for _, s := range l.cols {
		if s != "" {
			out = append(out, s)
		}
	}
	for _, s := range l.rows {
		if s != "" {
			out = append(out, s)
		}
	}

	return out
}

// Clone returns an independent deep copy of the ledger.
// Complexity: O(colSlots + rowSlots).
func (l *Ledger) Clone() *Ledger {
	cp := &Ledger{
		cols: make([]string, len(l.cols)),
		rows: make([]string, len(l.rows)),
	}
	copy(cp.cols, l.cols)
	copy(cp.rows, l.rows)

	return cp
}
