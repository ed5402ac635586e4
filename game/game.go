// Package game implements the rules of Quixo: a 5×5 board whose border
// tiles are picked up and pushed back in from an edge, shifting the row or
// column between them. Five marks in a row, column, or main diagonal win.
package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Player is a player mark. The zero value None doubles as the empty cell.
type Player int8

const (
	None Player = iota
	X
	O
)

// Next returns the other player.
func (p Player) Next() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	}
	panic("Unreachable")
}

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "·"
}

// Shift is the edge a selected row or column is pushed toward.
type Shift int8

const (
	Top Shift = iota
	Bottom
	Left
	Right
)

func (s Shift) String() string {
	switch s {
	case Top:
		return "T"
	case Bottom:
		return "B"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "?"
}

// Move selects the border cell at (X, Y) and pushes its row or column
// toward Shift.
type Move struct {
	X, Y  uint8
	Shift Shift
}

func (m Move) String() string { return fmt.Sprintf("x: %d, y: %d, shift: %s", m.X, m.Y, m.Shift) }

var (
	// ErrInvalidMove is returned when a move picks a non-border cell, a cell
	// held by the opponent, or pushes toward an edge the cell already touches.
	ErrInvalidMove = errors.New("invalid move")
	// ErrNoMoves signals a stalled position; callers treat it as a draw.
	ErrNoMoves = errors.New("no valid moves available")
)

// catalog is every (border cell, shift) pair that doesn't push toward an
// edge the cell already touches: 4 corners × 2 shifts + 12 edge cells × 3
// shifts = 44 entries. The enumeration order is observable - tie-breaks
// downstream pick the last of equally scored candidates - so it is fixed:
// x-major over border cells, Top/Bottom/Left/Right within a cell.
var catalog []Move

func init() {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if x != 0 && x != Size-1 && y != 0 && y != Size-1 {
				continue
			}
			for _, s := range []Shift{Top, Bottom, Left, Right} {
				if shiftsOffBoard(x, y, s) {
					continue
				}
				catalog = append(catalog, Move{X: uint8(x), Y: uint8(y), Shift: s})
			}
		}
	}
}

// shiftsOffBoard reports whether s pushes (x, y) toward an edge it is
// already on, which would slide the piece off the board.
func shiftsOffBoard(x, y int, s Shift) bool {
	switch s {
	case Top:
		return y == 0
	case Bottom:
		return y == Size-1
	case Left:
		return x == 0
	case Right:
		return x == Size-1
	}
	return true
}

// LegalMoves filters the move catalog by occupancy: p may pick up an empty
// cell or one of its own marks, never the opponent's. At most 44 moves come
// back, in catalog order.
func LegalMoves(b Board, p Player) []Move {
	moves := make([]Move, 0, len(catalog))
	for _, m := range catalog {
		if c := b[m.Y][m.X]; c == None || c == p {
			moves = append(moves, m)
		}
	}
	return moves
}

// Apply lifts the piece at (m.X, m.Y), slides every cell between it and the
// target edge one step into the gap, and stamps p's mark into the slot at
// that edge. The board is taken and returned by value; the input is never
// mutated.
func (m Move) Apply(p Player, b Board) (Board, error) {
	x, y := int(m.X), int(m.Y)
	if x >= Size || y >= Size {
		return b, ErrInvalidMove
	}
	if x != 0 && x != Size-1 && y != 0 && y != Size-1 {
		return b, ErrInvalidMove
	}
	if c := b[y][x]; c != None && c != p {
		return b, ErrInvalidMove
	}
	switch m.Shift {
	case Top:
		if y == 0 {
			return b, ErrInvalidMove
		}
		for i := y; i >= 1; i-- {
			b[i][x] = b[i-1][x]
		}
		b[0][x] = p
	case Bottom:
		if y == Size-1 {
			return b, ErrInvalidMove
		}
		for i := y; i < Size-1; i++ {
			b[i][x] = b[i+1][x]
		}
		b[Size-1][x] = p
	case Left:
		if x == 0 {
			return b, ErrInvalidMove
		}
		for i := x; i >= 1; i-- {
			b[y][i] = b[y][i-1]
		}
		b[y][0] = p
	case Right:
		if x == Size-1 {
			return b, ErrInvalidMove
		}
		for i := x; i < Size-1; i++ {
			b[y][i] = b[y][i+1]
		}
		b[y][Size-1] = p
	default:
		return b, ErrInvalidMove
	}
	return b, nil
}
