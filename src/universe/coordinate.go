package universe

import "fmt"

//Coordinate identifies one cell of the unbounded grid
type Coordinate struct {
	X int
	Y int
}

//neighborOffsets lists the Moore neighbourhood, row by row
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

//C is a shorthand constructor for Coordinate
func C(x int, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

//Add returns the coordinate shifted by dx, dy
func (c Coordinate) Add(dx int, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

//Neighbors returns the 8 Moore neighbours of the coordinate
func (c Coordinate) Neighbors() (n [8]Coordinate) {
	for i, o := range neighborOffsets {
		n[i] = c.Add(o[0], o[1])
	}
	return
}

//Hash combines both components, equal coordinates always hash equally
func (c Coordinate) Hash() uint64 {
	return hashInt(c.X) ^ (hashInt(c.Y) << 1)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

//hashInt is the splitmix64 finalizer
func hashInt(v int) uint64 {
	z := uint64(v) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
