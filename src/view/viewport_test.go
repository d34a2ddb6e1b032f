package view

import (
	"testing"

	"infinilife/src/universe"
)

func TestViewport_Rows(t *testing.T) {
	vp := Viewport{X: -2, Y: -1, Width: 4, Height: 3}
	cells := []universe.Coordinate{
		universe.C(-2, -1), //top left
		universe.C(1, 1),   //bottom right
		universe.C(0, 0),
		universe.C(2, 0),  //right of the viewport
		universe.C(0, -2), //above the viewport
	}
	rows, hidden := vp.Rows(cells)
	if hidden != 2 {
		t.Fatalf("hidden=%d, expected 2", hidden)
	}
	expected := [][]bool{
		{true, false, false, false},
		{false, false, true, false},
		{false, false, false, true},
	}
	for y := range expected {
		for x := range expected[y] {
			if rows[y][x] != expected[y][x] {
				t.Fatalf("cell at row %d col %d is %v, expected %v", y, x, rows[y][x], expected[y][x])
			}
		}
	}
}

func TestViewport_Empty(t *testing.T) {
	vp := Viewport{Width: 0, Height: 5}
	rows, hidden := vp.Rows([]universe.Coordinate{universe.C(0, 0)})
	if rows != nil || hidden != 1 {
		t.Fatalf("rows=%v hidden=%d", rows, hidden)
	}
}

func TestViewport_Navigation(t *testing.T) {
	vp := Viewport{Width: 10, Height: 4}
	vp.CenterOn(universe.C(100, -50))
	if vp.X != 95 || vp.Y != -52 {
		t.Fatalf("unexpected viewport %+v", vp)
	}
	if c := vp.ToWorld(5, 2); c != universe.C(100, -50) {
		t.Fatalf("the center should map back to (100,-50), got %v", c)
	}
	vp.Pan(-1, 3)
	if c := vp.ToWorld(0, 0); c != universe.C(94, -49) {
		t.Fatalf("unexpected top left %v", c)
	}
	vp.Resize(20, 8)
	if vp.X != 89 || vp.Y != -51 || vp.Width != 20 || vp.Height != 8 {
		t.Fatalf("unexpected viewport after resize %+v", vp)
	}
}

func TestViewport_ToWorldAfterResize(t *testing.T) {
	vp := Viewport{Width: 10, Height: 4}
	vp.CenterOn(universe.C(0, 0))
	vp.Resize(30, 12)
	//the world origin stays in the middle of the resized window
	if c := vp.ToWorld(15, 6); c != universe.C(0, 0) {
		t.Fatalf("the center should map to the origin, got %v", c)
	}
	if c := vp.ToWorld(0, 0); c != universe.C(-15, -6) {
		t.Fatalf("unexpected top left %v", c)
	}
	if !vp.Contains(vp.ToWorld(29, 11)) || vp.Contains(vp.ToWorld(30, 11)) {
		t.Fatal("only the positions inside the window are visible")
	}
}
