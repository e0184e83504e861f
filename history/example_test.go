// File: history/example_test.go
package history_test

import (
	"fmt"

	"github.com/katalvlaran/lptableau/history"
)

// ExampleLog walks one pivot back and forward again. The Log hands the
// caller the coordinate to replay; applying the pivot algebra at that
// coordinate is the undo mechanism.
func ExampleLog() {
	log := history.NewLog()
	log.Record(history.Coord{Row: 0, Col: 1})
	log.Record(history.Coord{Row: 2, Col: 0})

	c, _ := log.Undo()
	fmt.Println("undo ", c)
	c, _ = log.Redo()
	fmt.Println("redo ", c)
	fmt.Println("applied:", log.Cursor())

	// Output:
	// undo  (2,0)
	// redo  (2,0)
	// applied: 2
}
