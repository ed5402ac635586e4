package game

import (
	"testing"

	"lukechampine.com/frand"
)

func TestRandomGameTerminates(t *testing.T) {
	rng := frand.New()
	w, ok := RandomGame(Board{}, X, rng)
	if ok && w != X && w != O {
		t.Errorf("winner must be X or O, got %v", w)
	}
	if !ok && w != None {
		t.Errorf("a draw must report None, got %v", w)
	}
}

func TestRandomMoveStalled(t *testing.T) {
	// every border cell belongs to O: X has nothing to pick up
	var b Board
	for i := 0; i < Size; i++ {
		b[0][i] = O
		b[Size-1][i] = O
		b[i][0] = O
		b[i][Size-1] = O
	}
	if _, err := RandomMove(b, X, frand.New()); err != ErrNoMoves {
		t.Errorf("expected ErrNoMoves, got %v", err)
	}
	if len(LegalMoves(b, O)) != 44 {
		t.Error("O should still have the full catalog available")
	}
}
