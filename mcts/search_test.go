package mcts

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quixo-ai/quixo/game"
	"github.com/quixo-ai/quixo/rollout"
)

var (
	x = game.X
	o = game.O
)

// almostWon is one X short of completing column 1.
var almostWon = game.Board{
	{x, x, x, 0, 0},
	{o, x, 0, 0, 0},
	{0, x, 0, 0, 0},
	{o, x, 0, 0, 0},
	{x, 0, o, 0, 0},
}

// almostWonFinished is almostWon after X plays (1, 4, Left).
var almostWonFinished = game.Board{
	{x, x, x, 0, 0},
	{o, x, 0, 0, 0},
	{0, x, 0, 0, 0},
	{o, x, 0, 0, 0},
	{x, x, o, 0, 0},
}

func TestSearchFindsWinningMove(t *testing.T) {
	root := GameState{Board: almostWon, Player: x}
	best, ok := Search(root, 100, 1000, nil)
	require.True(t, ok)

	winning := []game.Move{
		{X: 1, Y: 4, Shift: game.Top},
		{X: 1, Y: 4, Shift: game.Left},
		{X: 3, Y: 4, Shift: game.Left},
		{X: 4, Y: 4, Shift: game.Left},
	}
	assert.Contains(t, winning, best, "search must pick a move that wins on the spot")
}

func TestOnePassAccumulates(t *testing.T) {
	tree := New(GameState{Board: almostWon, Player: x})
	for i := 0; i < 44; i++ {
		tree.onePass(1000)
	}
	won, ok := tree.Node(GameState{Board: almostWonFinished, Player: o})
	require.True(t, ok, "the winning child must be in the table")
	assert.GreaterOrEqual(t, won.WinsX, uint32(1000))
	assert.Zero(t, won.WinsO)
	assert.Equal(t, won.WinsX, won.Visits)
}

func TestChildStates(t *testing.T) {
	parent := GameState{Board: almostWon, Player: x}
	children := childStates(parent, game.LegalMoves(almostWon, x))
	assert.Len(t, children, 35)

	// both (1,4,T) and (1,4,L) complete column 1
	var winning int
	for _, c := range children {
		if c == (GameState{Board: almostWonFinished, Player: o}) {
			winning++
		}
	}
	assert.Equal(t, 2, winning)
}

func TestSimulateShortcut(t *testing.T) {
	tree := New(GameState{Board: almostWonFinished, Player: o})
	tally := tree.simulate(GameState{Board: almostWonFinished, Player: o}, 2000)
	assert.Equal(t, rollout.Tally{WinsX: 2000, Total: 2000}, tally)
}

func TestSearchZeroIterations(t *testing.T) {
	_, ok := Search(GameState{Board: almostWon, Player: x}, 0, 10, nil)
	assert.False(t, ok, "no passes means no visited children and no move")
}

func TestSearchNoLegalMoves(t *testing.T) {
	// X owns no border cell: stalled for X
	var b game.Board
	for i := 0; i < game.Size; i++ {
		b[0][i] = o
		b[game.Size-1][i] = o
		b[i][0] = o
		b[i][game.Size-1] = o
	}
	_, ok := Search(GameState{Board: b, Player: x}, 5, 10, nil)
	assert.False(t, ok)
}

func TestLastMax(t *testing.T) {
	assert.Equal(t, 2, lastMax([]float64{1, 2, 2, 0}))
	assert.Equal(t, 3, lastMax([]float64{0, 0, 0, 0}))
	inf := []float64{1, math.Inf(1), math.Inf(1)}
	assert.Equal(t, 2, lastMax(inf))
}

func TestBestMoveLastMaxTieBreak(t *testing.T) {
	root := GameState{Board: game.Board{}, Player: x}
	tree := New(root)

	moves := game.LegalMoves(root.Board, root.Player)
	childOf := func(i int) GameState {
		b, err := moves[i].Apply(root.Player, root.Board)
		require.NoError(t, err)
		return GameState{Board: b, Player: root.Player.Next()}
	}
	// two distinct children with equal visit counts: the later move wins.
	// moves[0] (0,0,Bottom) and moves[len-1] (4,4,Left) collide on an empty
	// board (both put X at row 4, col 0), so use moves[1] (0,0,Right).
	first, last := childOf(1), childOf(len(moves)-1)
	require.NotEqual(t, first, last)
	tree.nodes[first] = &Node{Visits: 7}
	tree.nodes[last] = &Node{Visits: 7}

	best, ok := tree.BestMove()
	require.True(t, ok)
	assert.Equal(t, moves[len(moves)-1], best)
}

func TestSearchProgress(t *testing.T) {
	ch := make(chan Progress, 8)
	_, ok := Search(GameState{Board: almostWon, Player: x}, 11, 10, ch)
	require.True(t, ok)

	var got []Progress
	for p := range ch { // the engine closed the channel when it finished
		got = append(got, p)
	}
	require.NotEmpty(t, got)
	assert.Equal(t, uint32(0), got[0].Iteration)
	for _, p := range got {
		assert.Zero(t, p.Iteration%10)
		assert.True(t, p.Ok)
	}
}

func TestToDot(t *testing.T) {
	tree := New(GameState{Board: almostWon, Player: x})
	tree.Search(3, 10, nil)
	dot := tree.ToDot()
	assert.True(t, strings.HasPrefix(dot, "digraph G"))
	assert.Contains(t, dot, "Visits")
	assert.Greater(t, tree.Len(), 1)
}
