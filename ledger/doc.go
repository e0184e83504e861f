// Package ledger tracks which variable label heads each tableau column
// and each tableau row.
//
// A Ledger is a two-region label array: one slot per tableau column
// ("column headers") and one slot per tableau row ("row headers"). A
// pivot at (row, col) exchanges the label on column col with the label
// on row row via Swap; over any pivot sequence the multiset of labels
// is preserved exactly.
//
// Label text follows the historical numbering: slot k of the combined
// sequence is "x<k+1>" for decision variables and "t<k+1>" for slack
// variables — the slack index continues the decision numbering rather
// than restarting at 1, so a problem with 2 decision variables and 2
// constraints yields x1, x2, t3, t4.
//
// Two layouts cover the two tableau shapes:
//
//   - LayoutColumns: every label starts on a column slot; row slots
//     start empty (the wide Simplex tableau, whose columns carry both
//     decision and slack variables).
//   - LayoutSplit: decision labels start on column slots, slack labels
//     on row slots (the compact Tucker tableau).
package ledger
