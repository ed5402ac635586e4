package quixo

import (
	"lukechampine.com/frand"

	"github.com/quixo-ai/quixo/game"
	"github.com/quixo-ai/quixo/mcts"
)

// An Agent is a player: anything that proposes a move for a position. A
// false return means the agent is stuck, which the arena scores as a draw.
type Agent interface {
	Name() string
	Move(b game.Board, p game.Player) (game.Move, bool)
}

// MCTSAgent answers each position with a fresh search run.
type MCTSAgent struct {
	Iterations      uint32
	RolloutsPerIter uint32

	name string
}

func NewMCTSAgent(name string, iterations, rolloutsPerIter uint32) *MCTSAgent {
	return &MCTSAgent{
		Iterations:      iterations,
		RolloutsPerIter: rolloutsPerIter,
		name:            name,
	}
}

func (a *MCTSAgent) Name() string { return a.name }

func (a *MCTSAgent) Move(b game.Board, p game.Player) (game.Move, bool) {
	root := mcts.GameState{Board: b, Player: p}
	return mcts.Search(root, a.Iterations, a.RolloutsPerIter, nil)
}

// RandomAgent plays uniformly random legal moves. It is the baseline
// opponent for measuring the search engine.
type RandomAgent struct {
	rng  *frand.RNG
	name string
}

func NewRandomAgent(name string) *RandomAgent {
	return &RandomAgent{rng: frand.New(), name: name}
}

func (a *RandomAgent) Name() string { return a.name }

func (a *RandomAgent) Move(b game.Board, p game.Player) (game.Move, bool) {
	m, err := game.RandomMove(b, p, a.rng)
	if err != nil {
		return game.Move{}, false
	}
	return m, true
}
