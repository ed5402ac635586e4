package mcts

import (
	"math"

	"github.com/quixo-ai/quixo/game"
	"github.com/quixo-ai/quixo/rollout"
)

// Search is the one-shot entry point: it seeds a fresh table, runs
// iterations passes from root with rolloutsPerIter random games simulated at
// the end of each, and returns the most visited root move. progress may be
// nil; when supplied, the engine is its sole producer and closes it when the
// search completes.
func Search(root GameState, iterations, rolloutsPerIter uint32, progress chan<- Progress) (game.Move, bool) {
	return New(root).Search(iterations, rolloutsPerIter, progress)
}

// Search runs the full pass budget and returns the most visited root move.
func (t *MCTS) Search(iterations, rolloutsPerIter uint32, progress chan<- Progress) (game.Move, bool) {
	for i := uint32(0); i < iterations; i++ {
		t.onePass(rolloutsPerIter)
		if progress != nil && i%10 == 0 {
			m, ok := t.BestMove()
			select {
			case progress <- Progress{Iteration: i, Best: m, Ok: ok}:
			default: // advisory only; a slow consumer must not stall the search
			}
		}
	}
	if progress != nil {
		close(progress)
	}
	return t.BestMove()
}

// onePass walks the table from the root to a leaf, simulates a batch of
// rollouts there, and credits the tally to every state the walk touched -
// each exactly once, however often the walk revisited it.
func (t *MCTS) onePass(rolloutsPerIter uint32) {
	current := t.root
	traversed := make(map[GameState]struct{})
	for {
		traversed[current] = struct{}{}
		if _, ok := t.nodes[current]; !ok {
			t.nodes[current] = &Node{}
		}
		if _, won := game.Winner(current.Board); won {
			break
		}
		moves := game.LegalMoves(current.Board, current.Player)
		if len(moves) == 0 {
			break
		}
		children := childStates(current, moves)
		scores := t.scoreChildren(current, children)
		best := lastMax(scores)
		if math.IsInf(scores[best], 1) {
			// expansion: the unvisited child joins the table and ends the walk
			current = children[best]
			traversed[current] = struct{}{}
			t.nodes[current] = &Node{}
			break
		}
		if _, seen := traversed[children[best]]; seen {
			// cycle: Quixo positions legally repeat within one pass
			break
		}
		current = children[best]
	}

	tally := t.simulate(current, rolloutsPerIter)
	for s := range traversed {
		n, ok := t.nodes[s]
		if !ok {
			panic("mcts: traversed state missing from statistics table")
		}
		n.Visits += tally.Total
		n.WinsX += tally.WinsX
		n.WinsO += tally.WinsO
	}
}

func childStates(s GameState, moves []game.Move) []GameState {
	children := make([]GameState, len(moves))
	for i, m := range moves {
		b, err := m.Apply(s.Player, s.Board)
		if err != nil {
			panic("mcts: legal move failed to apply")
		}
		children[i] = GameState{Board: b, Player: s.Player.Next()}
	}
	return children
}

// scoreChildren scores each child from the parent player's perspective:
// +Inf while unvisited, wins/v·sqrt(1/v) otherwise, and - once the children
// have more than one visit between them - a single sqrt(2·log10(N))
// multiplier shared by all siblings. This is deliberately not textbook UCB1;
// substituting the canonical formula silently changes move choice.
func (t *MCTS) scoreChildren(parent GameState, children []GameState) []float64 {
	scores := make([]float64, len(children))
	var sumVisits uint32
	for i, c := range children {
		var node Node
		if n, ok := t.nodes[c]; ok {
			node = *n
		}
		sumVisits += node.Visits
		if node.Visits == 0 {
			scores[i] = math.Inf(1)
			continue
		}
		v := float64(node.Visits)
		scores[i] = float64(node.wins(parent.Player)) / v * math.Sqrt(1/v)
	}
	if sumVisits > 1 {
		mult := math.Sqrt(2 * math.Log10(float64(sumVisits)))
		for i := range scores {
			scores[i] *= mult
		}
	}
	return scores
}

// lastMax returns the index of the maximum score, preferring the later of
// equal candidates: the running best is replaced on >=. A first-max scan
// explores a different branch and changes the chosen move.
func lastMax(scores []float64) int {
	best := 0
	for i, s := range scores {
		if s >= scores[best] {
			best = i
		}
	}
	return best
}

// simulate produces the rollout tally for the pass. A state that already has
// a winner skips the rollouts entirely: the whole batch is credited to that
// winner.
func (t *MCTS) simulate(s GameState, n uint32) rollout.Tally {
	if w, ok := game.Winner(s.Board); ok {
		tally := rollout.Tally{Total: n}
		if w == game.X {
			tally.WinsX = n
		} else {
			tally.WinsO = n
		}
		return tally
	}
	return rollout.Run(s.Board, s.Player, n)
}

// BestMove returns the root move whose resulting state was visited most,
// preferring the later of equally visited candidates. It returns false when
// the root has no legal moves or no child has been visited yet.
func (t *MCTS) BestMove() (game.Move, bool) {
	moves := game.LegalMoves(t.root.Board, t.root.Player)
	var best game.Move
	var bestVisits uint32
	found := false
	for _, m := range moves {
		b, err := m.Apply(t.root.Player, t.root.Board)
		if err != nil {
			continue
		}
		child := GameState{Board: b, Player: t.root.Player.Next()}
		var visits uint32
		if n, ok := t.nodes[child]; ok {
			visits = n.Visits
		}
		if !found || visits >= bestVisits {
			best, bestVisits, found = m, visits, true
		}
	}
	if !found || bestVisits == 0 {
		return game.Move{}, false
	}
	return best, true
}
