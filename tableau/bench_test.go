package tableau_test

import (
	"testing"

	"github.com/katalvlaran/lptableau/tableau"
)

// fill seeds every cell with a small non-zero deterministic value.
func fill(b *testing.B, tb *tableau.Tableau) {
	b.Helper()
	for r := 0; r < tb.Rows(); r++ {
		for c := 0; c < tb.Cols(); c++ {
			if err := tb.Set(r, c, float64((r*tb.Cols()+c)%7+1)); err != nil {
				b.Fatalf("Set(%d,%d) error: %v", r, c, err)
			}
		}
	}
}

// BenchmarkPivot_Simplex measures the Gauss–Jordan pass on a 21×41 grid.
func BenchmarkPivot_Simplex(b *testing.B) {
	tb, err := tableau.New(20, 20, tableau.Simplex)
	if err != nil {
		b.Fatalf("New error: %v", err)
	}
	fill(b, tb)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = tb.Pivot(3, 4); err != nil {
			b.Fatalf("Pivot error: %v", err)
		}
	}
}

// BenchmarkPivot_Tucker measures the exchange transform on a 21×21 grid.
// Pivoting the same coordinate alternates between two states, so the
// cell stays non-zero for every iteration.
func BenchmarkPivot_Tucker(b *testing.B) {
	tb, err := tableau.New(20, 20, tableau.Tucker)
	if err != nil {
		b.Fatalf("New error: %v", err)
	}
	fill(b, tb)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = tb.Pivot(3, 4); err != nil {
			b.Fatalf("Pivot error: %v", err)
		}
	}
}

// BenchmarkUndoRedo measures one undo/redo replay pair.
func BenchmarkUndoRedo(b *testing.B) {
	tb, err := tableau.New(20, 20, tableau.Tucker)
	if err != nil {
		b.Fatalf("New error: %v", err)
	}
	fill(b, tb)
	if err = tb.Pivot(3, 4); err != nil {
		b.Fatalf("Pivot error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tb.Undo()
		tb.Redo()
	}
}
