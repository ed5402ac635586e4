package game

import "fmt"

// Size is the board edge length.
const Size = 5

// Board is a 5×5 grid of marks, indexed [y][x]. It is a value type:
// comparable, usable as a map key, and copied on assignment, which keeps
// move application pure.
type Board [Size][Size]Player

func (b Board) Format(s fmt.State, c rune) {
	for y := 0; y < Size; y++ {
		fmt.Fprint(s, "⎢ ")
		for x := 0; x < Size; x++ {
			fmt.Fprintf(s, "%s ", b[y][x])
		}
		fmt.Fprint(s, "⎥")
		if y != Size-1 {
			fmt.Fprint(s, "\n")
		}
	}
}

// Winner reports the player holding a full row, column, or main diagonal.
// Lines are checked in a fixed order - row i then column i for each i, then
// the two diagonals - and the first uniform line decides.
func Winner(b Board) (Player, bool) {
	for i := 0; i < Size; i++ {
		if p := b[i][0]; p != None && uniformRow(b, i) {
			return p, true
		}
		if p := b[0][i]; p != None && uniformCol(b, i) {
			return p, true
		}
	}
	if p := b[0][0]; p != None && uniformDiag(b) {
		return p, true
	}
	if p := b[0][Size-1]; p != None && uniformAntiDiag(b) {
		return p, true
	}
	return None, false
}

func uniformRow(b Board, y int) bool {
	for x := 1; x < Size; x++ {
		if b[y][x] != b[y][0] {
			return false
		}
	}
	return true
}

func uniformCol(b Board, x int) bool {
	for y := 1; y < Size; y++ {
		if b[y][x] != b[0][x] {
			return false
		}
	}
	return true
}

func uniformDiag(b Board) bool {
	for i := 1; i < Size; i++ {
		if b[i][i] != b[0][0] {
			return false
		}
	}
	return true
}

func uniformAntiDiag(b Board) bool {
	for i := 1; i < Size; i++ {
		if b[i][Size-1-i] != b[0][Size-1] {
			return false
		}
	}
	return true
}

// MetaState describes a game in progress to output encoders.
type MetaState interface {
	Name() string
	GameNumber() int
	MoveNumber() int
	Board() Board
	Winner() (Player, bool)
}
