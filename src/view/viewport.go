package view

import "infinilife/src/universe"

//Viewport is the window onto the unbounded field
//X, Y is the world coordinate of the top left corner
type Viewport struct {
	X      int
	Y      int
	Width  int
	Height int
}

//Resize changes the viewport size keeping the center in place
func (vp *Viewport) Resize(width int, height int) {
	vp.X += (vp.Width - width) / 2
	vp.Y += (vp.Height - height) / 2
	vp.Width, vp.Height = width, height
}

//Pan moves the viewport by dx, dy cells
func (vp *Viewport) Pan(dx int, dy int) {
	vp.X += dx
	vp.Y += dy
}

//CenterOn moves the viewport so that c is in the middle
func (vp *Viewport) CenterOn(c universe.Coordinate) {
	vp.X = c.X - vp.Width/2
	vp.Y = c.Y - vp.Height/2
}

//ToWorld converts the position inside the viewport to the world coordinate
func (vp Viewport) ToWorld(col int, row int) universe.Coordinate {
	return universe.C(vp.X+col, vp.Y+row)
}

//Contains reports whether the cell is visible
func (vp Viewport) Contains(c universe.Coordinate) bool {
	return c.X >= vp.X && c.X < vp.X+vp.Width && c.Y >= vp.Y && c.Y < vp.Y+vp.Height
}

//Rows returns the visible part of the field, rows[y][x] is true for alive cells
//also returns the number of alive cells outside the viewport
func (vp Viewport) Rows(cells []universe.Coordinate) (rows [][]bool, hidden int) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, len(cells)
	}
	rows = make([][]bool, vp.Height)
	b := make([]bool, vp.Width*vp.Height)
	for i := range rows {
		start := vp.Width * i
		rows[i] = b[start : start+vp.Width : start+vp.Width]
	}
	for _, c := range cells {
		if !vp.Contains(c) {
			hidden++
			continue
		}
		rows[c.Y-vp.Y][c.X-vp.X] = true
	}
	return
}
