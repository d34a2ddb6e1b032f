package universe

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func boardOf(vc [][]int) *Board {
	b := NewBoard()
	for _, v := range vc {
		b.AddCell(C(v[0], v[1]))
	}
	return b
}

func sortedCells(cells []Coordinate) []Coordinate {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

func coords(vc [][]int) []Coordinate {
	res := make([]Coordinate, 0, len(vc))
	for _, v := range vc {
		res = append(res, C(v[0], v[1]))
	}
	return sortedCells(res)
}

//assertInvariant checks that every stored neighbour count equals the real number of alive neighbours
//and that every cell having alive neighbours is stored
func assertInvariant(t *testing.T, b *Board) {
	t.Helper()
	expected := map[Coordinate]int{}
	for c := range b.alive {
		for _, n := range c.Neighbors() {
			expected[n]++
		}
	}
	for c, n := range b.counts {
		if n <= 0 {
			t.Fatalf("stale entry %v=%d in neighbour counts", c, n)
		}
	}
	if !reflect.DeepEqual(expected, b.counts) {
		t.Fatalf("neighbour counts are out of sync with alive cells:\nexpected %v\ngot      %v", expected, b.counts)
	}
}

func assertSameBoard(t *testing.T, expected *Board, got *Board) {
	t.Helper()
	if !reflect.DeepEqual(expected.alive, got.alive) {
		t.Fatalf("alive cells differ:\nexpected %v\ngot      %v", sortedCells(expected.Cells()), sortedCells(got.Cells()))
	}
	if !reflect.DeepEqual(expected.counts, got.counts) {
		t.Fatalf("neighbour counts differ:\nexpected %v\ngot      %v", expected.counts, got.counts)
	}
}

func randomBoard(rnd *rand.Rand, cells int, size int) *Board {
	b := NewBoard()
	for i := 0; i < cells; i++ {
		b.AddCell(C(rnd.Intn(size)-size/2, rnd.Intn(size)-size/2))
	}
	return b
}

func TestBoard_AddCell(t *testing.T) {
	b := NewBoard()
	if !b.AddCell(C(0, 0)) {
		t.Fatal("first AddCell should change the board")
	}
	if b.CellCount() != 1 || b.CandidateCount() != 8 {
		t.Fatalf("cells=%d candidates=%d, expected 1 and 8", b.CellCount(), b.CandidateCount())
	}
	if b.NeighborCount(C(0, 0)) != 0 {
		t.Fatalf("the cell itself should not be counted as its neighbour")
	}
	for _, n := range C(0, 0).Neighbors() {
		if b.NeighborCount(n) != 1 {
			t.Fatalf("neighbour %v count=%d, expected 1", n, b.NeighborCount(n))
		}
	}
	b.AddCell(C(1, 0))
	if b.NeighborCount(C(0, 0)) != 1 || b.NeighborCount(C(0, 1)) != 2 {
		t.Fatalf("unexpected counts %v", b.counts)
	}
	assertInvariant(t, b)
}

func TestBoard_AddCellIdempotent(t *testing.T) {
	once := boardOf([][]int{{3, 4}, {4, 4}})
	twice := once.clone()
	if twice.AddCell(C(4, 4)) {
		t.Fatal("adding an alive cell should be a no-op")
	}
	assertSameBoard(t, once, twice)
}

func TestBoard_RemoveCell(t *testing.T) {
	b := boardOf([][]int{{0, 0}, {1, 0}})
	if !b.RemoveCell(C(1, 0)) {
		t.Fatal("RemoveCell of an alive cell should change the board")
	}
	if b.RemoveCell(C(1, 0)) {
		t.Fatal("RemoveCell of a dead cell should be a no-op")
	}
	assertInvariant(t, b)
	if b.CandidateCount() != 8 {
		t.Fatalf("zero entries must be pruned, candidates=%d", b.CandidateCount())
	}
	b.RemoveCell(C(0, 0))
	if b.CellCount() != 0 || b.CandidateCount() != 0 {
		t.Fatalf("cells=%d candidates=%d, expected empty board", b.CellCount(), b.CandidateCount())
	}
}

func TestBoard_AddRemoveInverse(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	b := randomBoard(rnd, 200, 30)
	before := b.clone()
	for i := 0; i < 100; i++ {
		c := C(rnd.Intn(40)-20, rnd.Intn(40)-20)
		if b.IsAlive(c) {
			continue
		}
		b.AddCell(c)
		b.RemoveCell(c)
		assertSameBoard(t, before, b)
	}
}

func TestBoard_RandomEditsKeepInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	b := NewBoard()
	for i := 0; i < 2000; i++ {
		c := C(rnd.Intn(20)-10, rnd.Intn(20)-10)
		switch rnd.Intn(5) {
		case 0, 1:
			b.AddCell(c)
		case 2, 3:
			b.RemoveCell(c)
		default:
			if rnd.Intn(2) == 0 {
				b.Step()
			} else {
				b.StepSharded(rnd.Intn(6) + 1)
			}
		}
		if i%50 == 0 {
			assertInvariant(t, b)
		}
	}
	assertInvariant(t, b)
}

func TestBoard_Reset(t *testing.T) {
	b := boardOf([][]int{{0, 0}, {5, 5}})
	b.TogglePause()
	b.Reset()
	if b.CellCount() != 0 || b.CandidateCount() != 0 {
		t.Fatalf("reset should clear the board even while paused")
	}
	if !b.IsPaused() {
		t.Fatal("reset should keep the pause state")
	}
	b.Reset()
	if b.CellCount() != 0 || b.CandidateCount() != 0 {
		t.Fatal("reset should be idempotent")
	}
}

func TestBoard_TogglePause(t *testing.T) {
	b := boardOf([][]int{{1, 0}, {1, 1}, {1, 2}})
	before := b.clone()
	if !b.TogglePause() || !b.IsPaused() {
		t.Fatal("the board should be paused")
	}
	assertSameBoard(t, before, b)
	for i := 0; i < 3; i++ {
		if b.Step().Changed() || b.StepParallel().Changed() || b.StepSharded(3).Changed() {
			t.Fatal("paused board must not change")
		}
	}
	assertSameBoard(t, before, b)
	if b.TogglePause() {
		t.Fatal("the board should be resumed")
	}
	b.Step()
	if reflect.DeepEqual(before.alive, b.alive) {
		t.Fatal("resumed board should advance")
	}
}

func TestBoard_Bounds(t *testing.T) {
	if _, _, ok := NewBoard().Bounds(); ok {
		t.Fatal("empty board has no bounds")
	}
	min, max, ok := boardOf([][]int{{-3, 2}, {4, -1}, {0, 7}}).Bounds()
	if !ok || min != C(-3, -1) || max != C(4, 7) {
		t.Fatalf("bounds=%v..%v ok=%v", min, max, ok)
	}
}

func TestBoard_Fingerprint(t *testing.T) {
	a := boardOf([][]int{{0, 0}, {1, 2}, {-5, 3}})
	b := boardOf([][]int{{-5, 3}, {0, 0}, {1, 2}})
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("the fingerprint should not depend on insertion order")
	}
	b.RemoveCell(C(0, 0))
	b.AddCell(C(0, 1))
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatal("different sets are expected to have different fingerprints")
	}
}

func TestBoard_CellsIsSnapshot(t *testing.T) {
	b := boardOf([][]int{{0, 0}})
	cells := b.Cells()
	cells[0] = C(9, 9)
	if !b.IsAlive(C(0, 0)) || b.IsAlive(C(9, 9)) {
		t.Fatal("Cells should return a copy")
	}
}
