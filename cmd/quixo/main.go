package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quixo-ai/quixo"
	"github.com/quixo-ai/quixo/encoding/gif"
	"github.com/quixo-ai/quixo/game"
	"github.com/quixo-ai/quixo/mcts"
)

var (
	iterations = flag.Uint("iterations", 1000, "search passes per engine move")
	rollouts   = flag.Uint("rollouts", 1000, "random games played per search pass")
	selfplay   = flag.Bool("selfplay", false, "run engine-vs-random games instead of the interactive shell")
	games      = flag.Int("games", 10, "number of selfplay games")
	gifPath    = flag.String("gif", "", "write selfplay games to this animated gif")
	dotPath    = flag.String("dot", "", "dump the search statistics of each ai command to this graphviz file")
	statsPath  = flag.String("stats", "", "write selfplay statistics to this csv file")
	debug      = flag.Bool("debug", false, "verbose logging")
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "show - print the board\n")
	io.WriteString(w, "move <x> <y> <T|B|L|R> - take a border tile and push it back in\n")
	io.WriteString(w, "ai - let the engine choose the move for the side to play\n")
	io.WriteString(w, "new - start a fresh game\n")
	io.WriteString(w, "quit - leave\n")
}

func main() {
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *selfplay {
		if err := runSelfplay(); err != nil {
			log.Fatal().Err(err).Msg("selfplay failed")
		}
		return
	}
	if err := runShell(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func runSelfplay() error {
	engine := quixo.NewMCTSAgent("mcts", uint32(*iterations), uint32(*rollouts))
	baseline := quixo.NewRandomAgent("random")
	arena := quixo.NewArena("quixo", engine, baseline)

	var enc quixo.OutputEncoder = quixo.NopEncoder{}
	if *gifPath != "" {
		g := gif.NewGifEncoder(600, 600)
		f, err := os.Create(*gifPath)
		if err != nil {
			return err
		}
		defer f.Close()
		g.Writer = f
		enc = g
	}

	for i := 0; i < *games; i++ {
		winner := arena.Play(enc)
		log.Info().Int("game", i+1).Stringer("winner", winner).Msg("game finished")
	}
	if err := enc.Flush(); err != nil {
		return err
	}

	for _, name := range arena.Statistics.Agents {
		log.Info().
			Str("agent", name).
			Int("wins", arena.Statistics.Wins[name]).
			Int("losses", arena.Statistics.Losses[name]).
			Int("draws", arena.Statistics.Draws[name]).
			Float64("winrate", arena.Statistics.WinRate(name)).
			Msg("results")
	}
	if *statsPath != "" {
		return arena.Statistics.Dump(*statsPath)
	}
	return nil
}

// shell holds the position of the interactive game.
type shell struct {
	board  game.Board
	toMove game.Player
}

func runShell() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "\033[31mquixo>\033[0m ",
		HistoryFile: "/tmp/quixo-readline.tmp",
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	sh := &shell{toMove: game.X}
	sh.show(l.Stdout())

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "bye", "exit", "quit":
			return nil
		case "help":
			usage(l.Stderr())
		case "show":
			sh.show(l.Stdout())
		case "new":
			sh.board = game.Board{}
			sh.toMove = game.X
			sh.show(l.Stdout())
		case "move":
			if err := sh.humanMove(fields[1:]); err != nil {
				fmt.Fprintf(l.Stderr(), "%v\n", err)
				continue
			}
			sh.show(l.Stdout())
		case "ai":
			if err := sh.aiMove(); err != nil {
				fmt.Fprintf(l.Stderr(), "%v\n", err)
				continue
			}
			sh.show(l.Stdout())
		default:
			fmt.Fprintf(l.Stderr(), "unknown command %q, try help\n", fields[0])
		}
	}
}

func (sh *shell) show(w io.Writer) {
	fmt.Fprintf(w, "%v\n", sh.board)
	if winner, ok := game.Winner(sh.board); ok {
		fmt.Fprintf(w, "%s wins. Type new for another game.\n", winner)
		return
	}
	fmt.Fprintf(w, "%s to move\n", sh.toMove)
}

func (sh *shell) humanMove(args []string) error {
	if _, over := game.Winner(sh.board); over {
		return fmt.Errorf("the game is over, type new to start another")
	}
	m, err := parseMove(args)
	if err != nil {
		return err
	}
	b, err := m.Apply(sh.toMove, sh.board)
	if err != nil {
		return err
	}
	sh.board = b
	sh.toMove = sh.toMove.Next()
	return nil
}

func (sh *shell) aiMove() error {
	if _, over := game.Winner(sh.board); over {
		return fmt.Errorf("the game is over, type new to start another")
	}

	tree := mcts.New(mcts.GameState{Board: sh.board, Player: sh.toMove})
	progress := make(chan mcts.Progress, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range progress {
			ev := log.Debug().Uint32("iteration", p.Iteration)
			if p.Ok {
				ev = ev.Stringer("best", p.Best)
			}
			ev.Msg("searching")
		}
	}()

	m, ok := tree.Search(uint32(*iterations), uint32(*rollouts), progress)
	<-done
	if !ok {
		return fmt.Errorf("no move found for %s", sh.toMove)
	}

	if *dotPath != "" {
		if err := os.WriteFile(*dotPath, []byte(tree.ToDot()), 0644); err != nil {
			log.Error().Err(err).Str("path", *dotPath).Msg("could not dump search graph")
		}
	}

	log.Info().Stringer("player", sh.toMove).Stringer("chosen", m).Msg("engine move")
	b, err := m.Apply(sh.toMove, sh.board)
	if err != nil {
		return err
	}
	sh.board = b
	sh.toMove = sh.toMove.Next()
	return nil
}

func parseMove(args []string) (game.Move, error) {
	if len(args) != 3 {
		return game.Move{}, fmt.Errorf("usage: move <x> <y> <T|B|L|R>")
	}
	x, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return game.Move{}, fmt.Errorf("bad x %q", args[0])
	}
	y, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return game.Move{}, fmt.Errorf("bad y %q", args[1])
	}
	var shift game.Shift
	switch strings.ToUpper(args[2]) {
	case "T":
		shift = game.Top
	case "B":
		shift = game.Bottom
	case "L":
		shift = game.Left
	case "R":
		shift = game.Right
	default:
		return game.Move{}, fmt.Errorf("bad shift %q, want T, B, L or R", args[2])
	}
	return game.Move{X: uint8(x), Y: uint8(y), Shift: shift}, nil
}
