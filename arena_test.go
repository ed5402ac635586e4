package quixo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quixo-ai/quixo/game"
)

type countingEncoder struct {
	states int
	lastNo int
}

func (c *countingEncoder) Encode(ms game.MetaState) error {
	c.states++
	c.lastNo = ms.GameNumber()
	return nil
}

func (c *countingEncoder) Flush() error { return nil }

func TestArenaRandomVsRandom(t *testing.T) {
	arena := NewArena("quixo", NewRandomAgent("rnd-a"), NewRandomAgent("rnd-b"))
	enc := &countingEncoder{}

	const games = 3
	for i := 0; i < games; i++ {
		w := arena.Play(enc)
		assert.Contains(t, []game.Player{game.None, game.X, game.O}, w)
	}

	require.Equal(t, []string{"rnd-a", "rnd-b"}, arena.Statistics.Agents)
	assert.Equal(t, games, arena.Statistics.Games("rnd-a"))
	assert.Equal(t, games, arena.Statistics.Games("rnd-b"))
	assert.Greater(t, enc.states, 0)
	assert.Equal(t, games, enc.lastNo)
}

func TestArenaStuckAgentDraws(t *testing.T) {
	arena := NewArena("", agentFunc{name: "stuck-a"}, agentFunc{name: "stuck-b"})
	w := arena.Play(nil)
	assert.Equal(t, game.None, w)
	assert.Equal(t, 1, arena.Statistics.Draws["stuck-a"])
	assert.Equal(t, 1, arena.Statistics.Draws["stuck-b"])
}

type agentFunc struct{ name string }

func (a agentFunc) Name() string { return a.name }
func (a agentFunc) Move(game.Board, game.Player) (game.Move, bool) {
	return game.Move{}, false
}

func TestStatisticsDump(t *testing.T) {
	s := makeStatistics()
	s.win("a")
	s.win("a")
	s.loss("a")
	s.draw("b")

	assert.InDelta(t, 2.0/3.0, s.WinRate("a"), 1e-9)
	assert.Zero(t, s.WinRate("b"))

	path := t.TempDir() + "/stats.csv"
	require.NoError(t, s.Dump(path))
	assert.FileExists(t, path)
}
