package universe

//Transition summarizes one generation change
type Transition struct {
	Born     int
	Survived int
	Died     int
}

//Changed reports whether the generation differs from the previous one
func (t Transition) Changed() bool {
	return t.Born > 0 || t.Died > 0
}

func (t Transition) add(o Transition) Transition {
	return Transition{t.Born + o.Born, t.Survived + o.Survived, t.Died + o.Died}
}

//nextState applies B3/S23
func nextState(alive bool, liveNeighbours int) bool {
	return liveNeighbours == 3 || (alive && liveNeighbours == 2)
}

//generation accumulates the next generation, either for the whole board or for one shard
type generation struct {
	alive  map[Coordinate]struct{}
	counts map[Coordinate]int
	Transition
}

func newGeneration(sizeHint int) *generation {
	return &generation{
		alive:  make(map[Coordinate]struct{}, sizeHint),
		counts: make(map[Coordinate]int, sizeHint*3),
	}
}

//evaluate decides the next state of the candidate c and records it
func (g *generation) evaluate(b *Board, c Coordinate) {
	g.record(c, b.IsAlive(c), b.counts[c])
}

//record applies the rule to the cell with the given state and alive neighbours count
func (g *generation) record(c Coordinate, alive bool, liveNeighbours int) {
	if !nextState(alive, liveNeighbours) {
		if alive {
			g.Died++
		}
		return
	}
	if alive {
		g.Survived++
	} else {
		g.Born++
	}
	g.alive[c] = struct{}{}
	for _, n := range c.Neighbors() {
		g.counts[n]++
	}
}

//Step advances the board by one generation, does nothing while paused
//
//the candidates are the cells with at least one alive neighbour plus the alive cells themselves:
//an alive cell without alive neighbours has no counts entry but still has to die
func (b *Board) Step() Transition {
	if b.paused {
		return Transition{}
	}
	g := newGeneration(len(b.alive))
	for c := range b.counts {
		g.evaluate(b, c)
	}
	for c := range b.alive {
		if _, ok := b.counts[c]; !ok {
			g.evaluate(b, c)
		}
	}
	b.replace(g.alive, g.counts)
	return g.Transition
}

//candidates lists every cell evaluated by the next transition
func (b *Board) candidates() []Coordinate {
	cs := make([]Coordinate, 0, len(b.counts)+len(b.alive)/4)
	for c := range b.counts {
		cs = append(cs, c)
	}
	for c := range b.alive {
		if _, ok := b.counts[c]; !ok {
			cs = append(cs, c)
		}
	}
	return cs
}
