// File: ledger/example_test.go
package ledger_test

import (
	"fmt"

	"github.com/katalvlaran/lptableau/ledger"
)

// ExampleLedger_Swap shows the label exchange performed on every pivot:
// the variable heading column 1 trades places with the variable heading
// row 0.
func ExampleLedger_Swap() {
	ld, _ := ledger.New(2, 1, 3, 2, ledger.LayoutSplit)

	col, _ := ld.ColumnLabel(1)
	row, _ := ld.RowLabel(0)
	fmt.Println(col, row)

	_ = ld.Swap(1, 0)

	col, _ = ld.ColumnLabel(1)
	row, _ = ld.RowLabel(0)
	fmt.Println(col, row)

	// Output:
	// x2 t3
	// t3 x2
}
