// Package rollout plays batches of random Quixo games concurrently and
// reduces the outcomes into a single tally. It is the simulation stage of
// the search engine.
package rollout

import (
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/quixo-ai/quixo/game"
)

// Tally counts rollout outcomes. WinsX + WinsO + Draws == Total always.
type Tally struct {
	WinsX uint32
	WinsO uint32
	Draws uint32
	Total uint32
}

// Run plays n random games from (b, p), fanned out over one worker per CPU,
// and merges the per-worker counts. Each worker owns its random source, and
// the merge is elementwise addition - commutative and associative - so the
// result does not depend on how the trials were partitioned or scheduled.
func Run(b game.Board, p game.Player, n uint32) Tally {
	if n == 0 {
		return Tally{}
	}
	workers := uint32(runtime.NumCPU())
	if workers > n {
		workers = n
	}

	partials := make([]Tally, workers)
	var g errgroup.Group
	for w := uint32(0); w < workers; w++ {
		w := w
		trials := n / workers
		if w < n%workers {
			trials++
		}
		g.Go(func() error {
			rng := frand.New()
			t := &partials[w]
			for i := uint32(0); i < trials; i++ {
				switch winner, ok := game.RandomGame(b, p, rng); {
				case !ok:
					t.Draws++
				case winner == game.X:
					t.WinsX++
				default:
					t.WinsO++
				}
			}
			return nil
		})
	}
	g.Wait() // workers have nothing to fail with

	total := Tally{Total: n}
	for _, t := range partials {
		total.WinsX += t.WinsX
		total.WinsO += t.WinsO
		total.Draws += t.Draws
	}
	log.Debug().
		Uint32("n", n).
		Uint32("winsX", total.WinsX).
		Uint32("winsO", total.WinsO).
		Uint32("draws", total.Draws).
		Msg("rollout batch done")
	return total
}
