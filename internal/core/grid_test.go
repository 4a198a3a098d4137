package core

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestIndexRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {10, 10}, {7, 3}, {1, 9}, {200, 150}} {
		g := NewGrid(dims[0], dims[1])
		w, h := g.Dimensions()
		for i := 0; i < g.Len(); i++ {
			x, y := g.ToCoord(i)
			if x < 0 || x >= w || y < 0 || y >= h {
				t.Fatalf("%dx%d: index %d mapped off grid to (%d,%d)", w, h, i, x, y)
			}
			if got := g.ToIndex(x, y); got != i {
				t.Fatalf("%dx%d: round trip of %d returned %d", w, h, i, got)
			}
		}
	}
}

func TestGridForResolutionDropsRemainder(t *testing.T) {
	g := NewGridForResolution(803, 601, 4)
	w, h := g.Dimensions()
	if w != 200 || h != 150 {
		t.Fatalf("expected 200x150, got %dx%d", w, h)
	}
	if g.Len() != 200*150 {
		t.Fatalf("expected %d cells, got %d", 200*150, g.Len())
	}
}

func TestCellAccessBounds(t *testing.T) {
	g := NewGrid(4, 3)
	sand := Cell{Kind: Sand, Color: Color{R: 1, G: 2, B: 3}}

	if err := g.SetCell(11, sand); err != nil {
		t.Fatalf("unexpected error on last index: %v", err)
	}
	got, err := g.CellAt(11)
	if err != nil || got != sand {
		t.Fatalf("expected %v, got %v (err %v)", sand, got, err)
	}

	for _, i := range []int{-1, 12, 100} {
		if _, err := g.CellAt(i); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("CellAt(%d): expected ErrOutOfRange, got %v", i, err)
		}
		if err := g.SetCell(i, sand); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("SetCell(%d): expected ErrOutOfRange, got %v", i, err)
		}
	}
}

func TestAtOffGridIsEmpty(t *testing.T) {
	g := NewGrid(2, 2)
	for i := 0; i < g.Len(); i++ {
		_ = g.SetCell(i, Cell{Kind: Stone})
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if c := g.At(p[0], p[1]); !c.IsEmpty() {
			t.Fatalf("At(%d,%d) = %v, expected empty", p[0], p[1], c)
		}
	}
	if c := g.At(1, 1); c.Kind != Stone {
		t.Fatalf("At(1,1) = %v, expected stone", c)
	}
}

func TestClearResetsEveryCell(t *testing.T) {
	g := NewGrid(5, 5)
	for i := 0; i < g.Len(); i++ {
		_ = g.SetCell(i, Cell{Kind: Water, Color: Color{R: 28, G: 163, B: 236}})
	}
	g.Clear()
	if n := g.CountNonEmpty(); n != 0 {
		t.Fatalf("expected empty grid after Clear, found %d particles", n)
	}
	for i, c := range g.Cells() {
		if c != (Cell{}) {
			t.Fatalf("cell %d = %v after Clear", i, c)
		}
	}
}

func TestSwapReturnsPreviousBuffer(t *testing.T) {
	g := NewGrid(3, 1)
	_ = g.SetCell(0, Cell{Kind: Sand})
	before := g.Snapshot()

	next := make([]Cell, 3)
	next[2] = Cell{Kind: Stone}
	prev := g.Swap(next)

	if !slices.Equal(prev, before) {
		t.Fatalf("swap returned %v, expected %v", prev, before)
	}
	if c, _ := g.CellAt(2); c.Kind != Stone {
		t.Fatalf("expected swapped buffer to be live, got %v", c)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched swap length")
		}
	}()
	g.Swap(make([]Cell, 2))
}

func TestSnapshotIsACopy(t *testing.T) {
	g := NewGrid(2, 1)
	snap := g.Snapshot()
	snap[0] = Cell{Kind: Sand}
	if c, _ := g.CellAt(0); !c.IsEmpty() {
		t.Fatal("mutating a snapshot must not touch the grid")
	}
}

func TestKindFromIDAndParse(t *testing.T) {
	for id, want := range map[uint8]Kind{0: Empty, 1: Sand, 2: Stone, 3: Water, 4: Empty, 255: Empty} {
		if got := KindFromID(id); got != want {
			t.Fatalf("KindFromID(%d) = %v, expected %v", id, got, want)
		}
	}
	if k, ok := ParseKind(" Water "); !ok || k != Water {
		t.Fatalf("ParseKind water = %v,%v", k, ok)
	}
	if _, ok := ParseKind("lava"); ok {
		t.Fatal("lava is not a kind")
	}
	if Kind(9).String() != "unknown" {
		t.Fatalf("unexpected name %q", Kind(9).String())
	}
}

func TestFixedStepPacesFrames(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first frame should run immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval must not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval should step")
	}

	clock = clock.Add(10 * time.Second)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps > 2 {
		t.Fatalf("stall produced %d catch-up frames", steps)
	}
}

func TestFPSMeterReportsPerWindow(t *testing.T) {
	m := NewFPSMeter()
	for i := 0; i < 59; i++ {
		if m.Frame(16 * time.Millisecond) {
			t.Fatalf("reading published early at frame %d", i)
		}
	}
	for !m.Frame(16 * time.Millisecond) {
	}
	if fps := m.FPS(); fps < 55 || fps > 65 {
		t.Fatalf("expected ~62 fps, got %.2f", fps)
	}
}
