package universe

import (
	"runtime"
)

/*
	Universe implementation with multithreaded computation algorithm
	the candidate cells are splitted into the shards each of which is computed by individual goroutine
*/

const (
	DefMinCellsPerWorker = 64 //minimum candidate cells for one worker
)

type MultithreadedUniverse struct {
	*BaseUniverse
	workers int
}

func NewMultithreadedUniverse(o *Options, stateCh chan Status) Universe {
	mu := MultithreadedUniverse{BaseUniverse: NewBaseUniverse(o, stateCh)}
	//redefine the nextIteration
	mu.BaseUniverse.nextIteration = mu.nextIteration

	mu.workers = mu.options.Workers
	if mu.workers <= 0 {
		mu.workers = runtime.GOMAXPROCS(0)
	}
	mu.options.Advanced["engine"] = "parallel"
	mu.options.Advanced["Workers"] = mu.workers
	mu.options.Advanced["Min cells per worker"] = DefMinCellsPerWorker
	return &mu
}

//nextIteration calculates next state for the universe
//small populations are not worth the goroutines, the shards count is limited by DefMinCellsPerWorker
func (mu *MultithreadedUniverse) nextIteration() Transition {
	b := mu.board.Board
	shards := b.CandidateCount() / DefMinCellsPerWorker
	if shards > mu.workers {
		shards = mu.workers
	}
	if shards < 1 {
		shards = 1
	}
	return b.StepSharded(shards)
}
