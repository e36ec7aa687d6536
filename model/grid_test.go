package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestViewAccessors(t *testing.T) {
	e := mustEngine(t, 3, 2, false)
	mustSeed(t, e, Coord{2, 0}, Coord{0, 1})
	v := e.Front()

	if got := v.String(); got != "001/100" {
		t.Fatalf("String() = %s, want 001/100", got)
	}
	if v.At(2, 0) != 1 || v.At(1, 0) != 0 {
		t.Fatalf("At returned wrong values")
	}
	if v.At(-1, 0) != 0 || v.At(3, 0) != 0 || v.Alive(0, 2) {
		t.Fatalf("out-of-range reads should be dead")
	}
	if got := v.Population(); got != 2 {
		t.Fatalf("Population() = %d, want 2", got)
	}

	live := v.LiveCells()
	if len(live) != 2 || live[0] != (Coord{2, 0}) || live[1] != (Coord{0, 1}) {
		t.Fatalf("LiveCells() = %v", live)
	}

	rows := v.Rows()
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("Rows() shape = %dx%d, want 2x3", len(rows), len(rows[0]))
	}
	rows[0][0] = 1
	if v.Alive(0, 0) {
		t.Fatalf("mutating Rows() leaked into the grid")
	}
	if v.Row(5) != nil {
		t.Fatalf("Row(5) should be nil")
	}
}

func TestViewHash(t *testing.T) {
	a := mustEngine(t, 4, 4, false)
	b := mustEngine(t, 4, 4, false)
	if a.Front().Hash() != b.Front().Hash() {
		t.Fatalf("equal grids hash differently")
	}

	mustSeed(t, a, Coord{1, 1})
	if a.Front().Hash() == b.Front().Hash() {
		t.Fatalf("different grids share a hash")
	}
}

func TestGridRowsShareNoCapacity(t *testing.T) {
	g := newGrid(3, 2)
	row := append(g.cells[0], 1)
	if g.cells[1][0] != 0 || len(row) != 4 {
		t.Fatalf("appending to a row overwrote the next row")
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	e := mustEngine(t, 2, 2, false)
	mustSeed(t, e, Coord{0, 0}, Coord{1, 1})

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Display(e.Front()); err != nil {
		t.Fatalf("Display: %v", err)
	}

	want := strings.Join([]string{
		gridPosBlock + gridPosEmpty,
		gridPosEmpty + gridPosBlock,
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("Display wrote %q, want %q", got, want)
	}
}
