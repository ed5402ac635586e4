package quixo

import (
	"encoding/csv"
	"os"
	"strconv"
)

// Statistics tracks per-agent results across arena games.
type Statistics struct {
	Agents []string // in first-seen order
	Wins   map[string]int
	Losses map[string]int
	Draws  map[string]int
}

func makeStatistics() Statistics {
	return Statistics{
		Wins:   make(map[string]int),
		Losses: make(map[string]int),
		Draws:  make(map[string]int),
	}
}

func (s *Statistics) observe(name string) {
	for _, a := range s.Agents {
		if a == name {
			return
		}
	}
	s.Agents = append(s.Agents, name)
}

func (s *Statistics) win(name string)  { s.observe(name); s.Wins[name]++ }
func (s *Statistics) loss(name string) { s.observe(name); s.Losses[name]++ }
func (s *Statistics) draw(name string) { s.observe(name); s.Draws[name]++ }

// Games returns how many games name has played.
func (s *Statistics) Games(name string) int {
	return s.Wins[name] + s.Losses[name] + s.Draws[name]
}

// WinRate returns name's share of won games, 0 when none were played.
func (s *Statistics) WinRate(name string) float64 {
	games := s.Games(name)
	if games == 0 {
		return 0
	}
	return float64(s.Wins[name]) / float64(games)
}

// Dump writes one CSV row per agent: name, wins, losses, draws, winrate.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"agent", "wins", "losses", "draws", "winrate"}); err != nil {
		return err
	}
	for _, name := range s.Agents {
		record := []string{
			name,
			strconv.Itoa(s.Wins[name]),
			strconv.Itoa(s.Losses[name]),
			strconv.Itoa(s.Draws[name]),
			strconv.FormatFloat(s.WinRate(name), 'f', 3, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
