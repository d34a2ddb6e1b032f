package universe

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

/*
	Parallel transition
	the candidate list is splitted into contiguous shards each of which is computed by individual goroutine.
	the workers only read the current generation and write into their own generation buffers,
	the buffers are merged after all workers are finished
*/

//StepParallel advances the board by one generation using one shard per available CPU
func (b *Board) StepParallel() Transition {
	return b.StepSharded(runtime.GOMAXPROCS(0))
}

//StepSharded advances the board by one generation splitting the candidates into the given number of shards
//the result does not depend on the number of shards
func (b *Board) StepSharded(shards int) Transition {
	if b.paused {
		return Transition{}
	}
	cs := b.candidates()
	if shards > len(cs) {
		shards = len(cs)
	}
	if shards < 1 {
		shards = 1
	}
	perShard := (len(cs) + shards - 1) / shards

	parts := make([]*generation, shards)
	var eg errgroup.Group
	for i := range parts {
		i := i
		lo := i * perShard
		hi := lo + perShard
		if lo > len(cs) {
			lo = len(cs)
		}
		if hi > len(cs) {
			hi = len(cs)
		}
		eg.Go(func() error {
			g := newGeneration((hi - lo) / 3)
			for _, c := range cs[lo:hi] {
				g.evaluate(b, c)
			}
			parts[i] = g
			return nil
		})
	}
	_ = eg.Wait()

	next := mergeGenerations(parts, len(b.alive))
	b.replace(next.alive, next.counts)
	return next.Transition
}

//mergeGenerations unions the alive sets and sums the partial neighbour counts key-wise
func mergeGenerations(parts []*generation, sizeHint int) *generation {
	next := newGeneration(sizeHint)
	for _, p := range parts {
		for c := range p.alive {
			next.alive[c] = struct{}{}
		}
		for c, n := range p.counts {
			next.counts[c] += n
		}
		next.Transition = next.Transition.add(p.Transition)
	}
	return next
}
