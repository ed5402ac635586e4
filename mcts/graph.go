package mcts

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/awalterschulze/gographviz"

	"github.com/quixo-ai/quixo/game"
)

type dotNode struct {
	ID    int
	State GameState
	Node
}

func (d dotNode) ToMove() game.Player { return d.State.Player }

func (d dotNode) BoardHTML() string {
	var buf bytes.Buffer
	for y := 0; y < game.Size; y++ {
		fmt.Fprint(&buf, "⎢ ")
		for x := 0; x < game.Size; x++ {
			fmt.Fprintf(&buf, "%s ", d.State.Board[y][x])
		}
		fmt.Fprint(&buf, "⎥<BR />")
	}
	return buf.String()
}

// ToDot renders the part of the statistics table reachable from the root as
// a graphviz digraph, one node per recorded state. Traversal is
// breadth-first in catalog move order, so output is deterministic for a
// given table. Two moves can lead to the same child; those show up as
// parallel edges.
func (t *MCTS) ToDot() string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	g.SetDir(true)

	ids := map[GameState]int{t.root: 0}
	queue := []GameState{t.root}
	var buf bytes.Buffer
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		d := dotNode{ID: ids[s], State: s, Node: *t.nodes[s]}
		tmpl.Execute(&buf, d)
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		g.AddNode("G", fmt.Sprintf("n%d", d.ID), attrs)
		buf.Reset()

		if _, won := game.Winner(s.Board); won {
			continue
		}
		for _, m := range game.LegalMoves(s.Board, s.Player) {
			b, err := m.Apply(s.Player, s.Board)
			if err != nil {
				continue
			}
			child := GameState{Board: b, Player: s.Player.Next()}
			if _, ok := t.nodes[child]; !ok {
				continue
			}
			if _, ok := ids[child]; !ok {
				ids[child] = len(ids)
				queue = append(queue, child)
			}
			g.AddEdge(fmt.Sprintf("n%d", ids[s]), fmt.Sprintf("n%d", ids[child]), true, nil)
		}
	}
	return g.String()
}

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Node</TD><TD>n{{.ID}}</TD></TR>
<TR><TD>To move</TD><TD>{{.ToMove}}</TD></TR>
<TR><TD>Visits</TD><TD>{{.Visits}}</TD></TR>
<TR><TD>X wins</TD><TD>{{.WinsX}}</TD></TR>
<TR><TD>O wins</TD><TD>{{.WinsO}}</TD></TR>
<TR><TD>State</TD><TD>{{.BoardHTML}}</TD></TR>
</TABLE>
>
`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("node").Parse(tmplRaw))
}
