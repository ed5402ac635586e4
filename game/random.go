package game

// Rand is the minimal random source the rules engine needs. Both *frand.RNG
// and *math/rand.Rand satisfy it; passing the source in keeps concurrent
// callers independent by construction.
type Rand interface {
	Intn(n int) int
}

// RandomMove picks a uniformly random legal move for p, or ErrNoMoves when
// the position is stalled for p.
func RandomMove(b Board, p Player, rng Rand) (Move, error) {
	moves := LegalMoves(b, p)
	if len(moves) == 0 {
		return Move{}, ErrNoMoves
	}
	return moves[rng.Intn(len(moves))], nil
}

// RandomGame plays uniformly random legal moves from (b, p) until a player
// completes a line (winner, true) or the side to move is stuck (None,
// false - a draw). This is the rollout policy of the search engine.
func RandomGame(b Board, p Player, rng Rand) (Player, bool) {
	for {
		if w, ok := Winner(b); ok {
			return w, true
		}
		m, err := RandomMove(b, p, rng)
		if err != nil {
			return None, false
		}
		b, _ = m.Apply(p, b)
		p = p.Next()
	}
}
