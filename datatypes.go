package quixo

import "github.com/quixo-ai/quixo/game"

// OutputEncoder consumes every position of a match as it is played.
//
// An example OutputEncoder is the gif Encoder. Another example would be a
// logger.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}

// NopEncoder discards everything. Handy when a caller wants Play's side
// effects without an output artifact.
type NopEncoder struct{}

func (NopEncoder) Encode(game.MetaState) error { return nil }
func (NopEncoder) Flush() error                { return nil }
