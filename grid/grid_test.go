package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lptableau/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive shapes.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"NegativeRows", -1, 3},
		{"NegativeCols", 3, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.New(tc.rows, tc.cols); !errors.Is(err, grid.ErrBadShape) {
				t.Errorf("New(%d,%d) error = %v; want ErrBadShape", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestNew_ZeroInitialized checks that a fresh grid holds all zeros.
func TestNew_ZeroInitialized(t *testing.T) {
	m, err := grid.New(2, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d) error: %v", i, j, err)
			}
			if v != 0 {
				t.Errorf("At(%d,%d) = %g; want 0", i, j, v)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Bounds checking
//----------------------------------------------------------------------------//

// TestAtSet_OutOfRange drives every out-of-bounds corner through At and Set.
func TestAtSet_OutOfRange(t *testing.T) {
	m, _ := grid.New(2, 4)
	bad := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 4}, {2, 4}}
	for _, rc := range bad {
		if _, err := m.At(rc[0], rc[1]); !errors.Is(err, grid.ErrOutOfRange) {
			t.Errorf("At(%d,%d) error = %v; want ErrOutOfRange", rc[0], rc[1], err)
		}
		if err := m.Set(rc[0], rc[1], 1); !errors.Is(err, grid.ErrOutOfRange) {
			t.Errorf("Set(%d,%d) error = %v; want ErrOutOfRange", rc[0], rc[1], err)
		}
	}
}

// TestSet_RejectsNonFinite verifies the finite-value policy on writes.
func TestSet_RejectsNonFinite(t *testing.T) {
	m, _ := grid.New(1, 1)
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := m.Set(0, 0, v); !errors.Is(err, grid.ErrNaNInf) {
			t.Errorf("Set(0,0,%g) error = %v; want ErrNaNInf", v, err)
		}
	}
	got, _ := m.At(0, 0)
	if got != 0 {
		t.Errorf("cell mutated by rejected write: got %g; want 0", got)
	}
}

//----------------------------------------------------------------------------//
// Round trip, views, copies
//----------------------------------------------------------------------------//

// TestSetAt_RoundTrip writes and re-reads a handful of cells.
func TestSetAt_RoundTrip(t *testing.T) {
	m, _ := grid.New(3, 3)
	want := map[[2]int]float64{{0, 0}: 1.5, {1, 2}: -7, {2, 1}: 0.25}
	for rc, v := range want {
		if err := m.Set(rc[0], rc[1], v); err != nil {
			t.Fatalf("Set(%d,%d) error: %v", rc[0], rc[1], err)
		}
	}
	for rc, v := range want {
		got, err := m.At(rc[0], rc[1])
		if err != nil {
			t.Fatalf("At(%d,%d) error: %v", rc[0], rc[1], err)
		}
		if got != v {
			t.Errorf("At(%d,%d) = %g; want %g", rc[0], rc[1], got, v)
		}
	}
}

// TestRow_ViewAliasesStorage checks that Row mutations reflect in the grid.
func TestRow_ViewAliasesStorage(t *testing.T) {
	m, _ := grid.New(2, 2)
	row, err := m.Row(1)
	if err != nil {
		t.Fatalf("Row(1) error: %v", err)
	}
	row[0] = 42
	got, _ := m.At(1, 0)
	if got != 42 {
		t.Errorf("At(1,0) = %g after view write; want 42", got)
	}

	if _, err = m.Row(2); !errors.Is(err, grid.ErrOutOfRange) {
		t.Errorf("Row(2) error = %v; want ErrOutOfRange", err)
	}
	if _, err = m.Row(-1); !errors.Is(err, grid.ErrOutOfRange) {
		t.Errorf("Row(-1) error = %v; want ErrOutOfRange", err)
	}
}

// TestFinite detects non-finite cells smuggled in through a Row view.
func TestFinite(t *testing.T) {
	m, _ := grid.New(2, 2)
	if !m.Finite() {
		t.Fatal("fresh grid reported non-finite")
	}

	row, _ := m.Row(0)
	row[1] = math.Inf(1)
	if m.Finite() {
		t.Error("Finite() = true with +Inf cell; want false")
	}

	row[1] = math.NaN()
	if m.Finite() {
		t.Error("Finite() = true with NaN cell; want false")
	}

	row[1] = 0
	if !m.Finite() {
		t.Error("Finite() = false after repair; want true")
	}
}

// TestClone_Independent verifies deep-copy semantics.
func TestClone_Independent(t *testing.T) {
	m, _ := grid.New(2, 2)
	_ = m.Set(0, 0, 3)
	cp := m.Clone()
	_ = cp.Set(0, 0, 9)

	orig, _ := m.At(0, 0)
	if orig != 3 {
		t.Errorf("original mutated through clone: got %g; want 3", orig)
	}
}

// TestSnapshot_Copies verifies Snapshot returns detached row slices.
func TestSnapshot_Copies(t *testing.T) {
	m, _ := grid.New(1, 2)
	_ = m.Set(0, 1, 5)
	snap := m.Snapshot()
	snap[0][1] = -1

	got, _ := m.At(0, 1)
	if got != 5 {
		t.Errorf("original mutated through snapshot: got %g; want 5", got)
	}
}

// TestString renders a tiny grid.
func TestString(t *testing.T) {
	m, _ := grid.New(2, 2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(1, 1, -2.5)
	want := "[1, 0]\n[0, -2.5]\n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
