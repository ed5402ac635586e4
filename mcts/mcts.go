// Package mcts chooses Quixo moves by Monte Carlo tree search backed by
// parallel random rollouts.
//
// Statistics live in a table keyed by the position itself rather than in an
// allocated tree: Quixo moves are reversible, so the same position is
// reached along many paths and a table shares those statistics for free. The
// price is that a single search pass can walk in circles, which is why each
// pass carries its own traversed set.
package mcts

import "github.com/quixo-ai/quixo/game"

// GameState is the unit of identity in the search: a position plus the side
// to move. It is comparable and keys the statistics table directly, so two
// states are the same entry iff board and player match exactly.
type GameState struct {
	Board  game.Board
	Player game.Player
}

// Node holds the aggregate statistics recorded for one GameState.
type Node struct {
	Visits uint32
	WinsX  uint32
	WinsO  uint32
}

// wins returns the counter benefiting p.
func (n Node) wins(p game.Player) uint32 {
	if p == game.O {
		return n.WinsO
	}
	return n.WinsX
}

// Progress is the advisory message sent on the progress channel after every
// 10th search pass (0-indexed). Ok is false while the root has no visited
// children.
type Progress struct {
	Iteration uint32
	Best      game.Move
	Ok        bool
}

// MCTS owns the statistics table of a single search run. A single goroutine
// drives it - passes are strictly sequential and the table needs no locking.
// Make a new one per invocation; tables are never shared across runs.
type MCTS struct {
	root  GameState
	nodes map[GameState]*Node
}

// New seeds a fresh statistics table with the root state.
func New(root GameState) *MCTS {
	return &MCTS{
		root:  root,
		nodes: map[GameState]*Node{root: {}},
	}
}

// Node returns the statistics recorded for s, if any.
func (t *MCTS) Node(s GameState) (Node, bool) {
	n, ok := t.nodes[s]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Len returns the number of states in the table.
func (t *MCTS) Len() int { return len(t.nodes) }
