package tableau_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/lptableau/tableau"
)

// TestRender_Structure pins the separator column before the answer
// column and the separator row above the objective row.
func TestRender_Structure(t *testing.T) {
	tb, err := tableau.New(1, 2, tableau.Simplex, tableau.WithCells([][]float64{
		{1, 1, 1, 4},
		{-1, -2, 0, 0.5},
	}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	want := [][]string{
		{"1", "1", "1", "|", "4"},
		{"---", "---", "---", "---", "---"},
		{"-1", "-2", "0", "|", "0.5"},
	}
	got := tb.Render()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %v; want %v", got, want)
	}
}

// TestRender_Detached verifies the grid is a copy, not a view.
func TestRender_Detached(t *testing.T) {
	tb, _ := tableau.New(1, 1, tableau.Tucker)
	r := tb.Render()
	r[0][0] = "mutated"

	if got := tb.Render()[0][0]; got != "0" {
		t.Errorf("Render leaked shared state: got %q; want \"0\"", got)
	}
}

// TestString joins the rendered grid with spaces and newlines.
func TestString(t *testing.T) {
	tb, _ := tableau.New(1, 1, tableau.Tucker, tableau.WithCells([][]float64{
		{2, 6},
		{3, 0},
	}))
	want := "2 | 6\n--- --- ---\n3 | 0"
	if got := tb.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
