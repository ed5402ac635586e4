// Package quixo pits agents against each other over full games of Quixo and
// keeps score. The rules live in game, the engine in mcts; this package is
// the glue that external callers and the CLI drive.
package quixo

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/quixo-ai/quixo/game"
)

// DefaultMaxMoves bounds a single game. Quixo has no built-in draw rule and
// two stubborn agents can shuffle tiles forever; a game running past the
// bound is scored as a draw.
const DefaultMaxMoves = 500

// Arena plays games between two agents. It implements game.MetaState, so an
// OutputEncoder can watch the game in progress.
type Arena struct {
	A, B Agent

	// MaxMoves bounds one game; <= 0 means DefaultMaxMoves.
	MaxMoves int

	Statistics Statistics

	// state of the game in progress
	board      game.Board
	toMove     game.Player
	moveNum    int
	gameNumber int

	name string
}

func NewArena(name string, a, b Agent) *Arena {
	if name == "" {
		name = "quixo"
	}
	return &Arena{
		A:          a,
		B:          b,
		MaxMoves:   DefaultMaxMoves,
		Statistics: makeStatistics(),
		name:       name,
	}
}

// Play runs one full game and returns the winner (None on a draw). Sides
// are assigned at random each game. Every position reached is handed to enc
// when one is supplied.
func (a *Arena) Play(enc OutputEncoder) game.Player {
	players := make(map[game.Player]Agent, 2)
	if frand.Intn(2) == 0 {
		players[game.X], players[game.O] = a.A, a.B
	} else {
		players[game.X], players[game.O] = a.B, a.A
	}

	a.board = game.Board{}
	a.toMove = game.X
	a.moveNum = 0
	a.gameNumber++

	maxMoves := a.MaxMoves
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}

	var winner game.Player
	for {
		var won bool
		if winner, won = game.Winner(a.board); won {
			break
		}
		if a.moveNum >= maxMoves {
			winner = game.None
			break
		}
		agent := players[a.toMove]
		m, ok := agent.Move(a.board, a.toMove)
		if !ok {
			// stalled side: drawn game
			winner = game.None
			break
		}
		b, err := m.Apply(a.toMove, a.board)
		if err != nil {
			log.Error().Err(err).
				Str("agent", agent.Name()).
				Stringer("move", m).
				Msg("agent proposed an illegal move, scoring the game as a draw")
			winner = game.None
			break
		}
		log.Debug().
			Int("game", a.gameNumber).
			Int("move", a.moveNum).
			Stringer("player", a.toMove).
			Stringer("chosen", m).
			Str("agent", agent.Name()).
			Msg("move played")

		a.board = b
		a.toMove = a.toMove.Next()
		a.moveNum++
		if enc != nil {
			if err := enc.Encode(a); err != nil {
				log.Error().Err(err).Msg("output encoder failed")
			}
		}
	}

	if winner == game.None {
		a.Statistics.draw(a.A.Name())
		a.Statistics.draw(a.B.Name())
	} else {
		a.Statistics.win(players[winner].Name())
		a.Statistics.loss(players[winner.Next()].Name())
	}
	return winner
}

// game.MetaState, for output encoders.

func (a *Arena) Name() string                { return a.name }
func (a *Arena) GameNumber() int             { return a.gameNumber }
func (a *Arena) MoveNumber() int             { return a.moveNum }
func (a *Arena) Board() game.Board           { return a.board }
func (a *Arena) Winner() (game.Player, bool) { return game.Winner(a.board) }
