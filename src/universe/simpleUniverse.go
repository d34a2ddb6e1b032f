package universe

/*
	Simple Universe implementation without the neighbour counts lookup
	every candidate cell counts its alive neighbours directly in the alive set,
	the neighbour counts of the new generation are rebuilt from scratch.
	it does eight set lookups per candidate and is used as the reference for the faster engines
*/
type SimpleUniverse struct {
	*BaseUniverse
}

func NewSimpleUniverse(o *Options, stateCh chan Status) Universe {
	su := SimpleUniverse{BaseUniverse: NewBaseUniverse(o, stateCh)}
	//redefine the nextIteration
	su.BaseUniverse.nextIteration = su.nextIteration
	su.options.Advanced["engine"] = "recount"
	return &su
}

func (su *SimpleUniverse) nextIteration() Transition {
	return recount(su.board.Board)
}

//recount advances the board by one generation counting the neighbours on the fly
func recount(b *Board) Transition {
	if b.IsPaused() {
		return Transition{}
	}
	g := newGeneration(b.CellCount())
	for _, c := range b.candidates() {
		liveNeighbours := 0
		for _, n := range c.Neighbors() {
			if b.IsAlive(n) {
				liveNeighbours++
			}
		}
		g.record(c, b.IsAlive(c), liveNeighbours)
	}
	b.replace(g.alive, g.counts)
	return g.Transition
}
