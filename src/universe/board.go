package universe

/*
	Board is the sparse representation of the unbounded field
	only the alive cells and the cells touching them are stored:
	alive  - the set of cells alive in the current generation
	counts - alive neighbours count for every cell with at least one alive neighbour

	for every coordinate c, counts[c] (0 when absent) equals the number of alive Moore neighbours of c.
	zero entries are never kept, the size of counts is reported as the candidate count
*/
type Board struct {
	alive  map[Coordinate]struct{}
	counts map[Coordinate]int
	paused bool
}

//NewBoard creates an empty, running board
func NewBoard() *Board {
	return &Board{
		alive:  make(map[Coordinate]struct{}),
		counts: make(map[Coordinate]int),
	}
}

//AddCell makes the cell alive, returns false if the cell was alive already
func (b *Board) AddCell(c Coordinate) bool {
	if _, ok := b.alive[c]; ok {
		return false
	}
	b.alive[c] = struct{}{}
	for _, n := range c.Neighbors() {
		b.counts[n]++
	}
	return true
}

//RemoveCell kills the cell, returns false if the cell was not alive
func (b *Board) RemoveCell(c Coordinate) bool {
	if _, ok := b.alive[c]; !ok {
		return false
	}
	delete(b.alive, c)
	for _, n := range c.Neighbors() {
		if b.counts[n] <= 1 {
			delete(b.counts, n)
		} else {
			b.counts[n]--
		}
	}
	return true
}

//Reset kills all cells, the pause state is kept
func (b *Board) Reset() {
	b.replace(make(map[Coordinate]struct{}), make(map[Coordinate]int))
}

//TogglePause flips the paused flag and returns the new value
func (b *Board) TogglePause() bool {
	b.paused = !b.paused
	return b.paused
}

func (b *Board) IsPaused() bool {
	return b.paused
}

func (b *Board) IsAlive(c Coordinate) bool {
	_, ok := b.alive[c]
	return ok
}

//NeighborCount returns the number of alive neighbours of the cell
func (b *Board) NeighborCount(c Coordinate) int {
	return b.counts[c]
}

//CellCount returns the number of alive cells
func (b *Board) CellCount() int {
	return len(b.alive)
}

//CandidateCount returns the number of cells having at least one alive neighbour
func (b *Board) CandidateCount() int {
	return len(b.counts)
}

//Cells returns a copy of the alive cells, in no particular order
func (b *Board) Cells() []Coordinate {
	cells := make([]Coordinate, 0, len(b.alive))
	for c := range b.alive {
		cells = append(cells, c)
	}
	return cells
}

//Bounds returns the smallest rectangle holding every alive cell
//ok is false for an empty board
func (b *Board) Bounds() (min Coordinate, max Coordinate, ok bool) {
	for c := range b.alive {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return
}

//Fingerprint is an order independent digest of the alive set
//equal sets always give equal fingerprints
func (b *Board) Fingerprint() (f uint64) {
	for c := range b.alive {
		f += c.Hash()
	}
	return
}

//clone returns a deep copy of the board, including the paused flag
func (b *Board) clone() *Board {
	nb := &Board{
		alive:  make(map[Coordinate]struct{}, len(b.alive)),
		counts: make(map[Coordinate]int, len(b.counts)),
		paused: b.paused,
	}
	for c := range b.alive {
		nb.alive[c] = struct{}{}
	}
	for c, n := range b.counts {
		nb.counts[c] = n
	}
	return nb
}

//replace publishes the next generation, both containers are always swapped together
func (b *Board) replace(alive map[Coordinate]struct{}, counts map[Coordinate]int) {
	b.alive, b.counts = alive, counts
}
