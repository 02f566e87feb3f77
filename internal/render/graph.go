package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"fsmkit/internal/fsm"
)

type Font string

const (
	Helvetica Font = "Helvetica"
	Arial     Font = "Arial"
	Times     Font = "Times"
	Courier   Font = "Courier"
)

type RankDir string

const (
	LeftToRight RankDir = "LR"
	RightToLeft RankDir = "RL"
	TopToBottom RankDir = "TB"
	BottomToTop RankDir = "BT"
)

// Format is a Graphviz output format.
type Format string

const (
	DOT Format = Format(graphviz.XDOT)
	SVG Format = Format(graphviz.SVG)
	PNG Format = Format(graphviz.PNG)
	JPG Format = Format(graphviz.JPG)
)

type Config struct {
	Name string
	Font
	RankDir
	Format
}

// Graph draws automata with Graphviz: accepting states are double circles
// and a point marks the start state.
type Graph struct {
	*Config
	g     *cgraph.Graph
	nodes map[fsm.State]*cgraph.Node
}

// NewGraph returns a Graph using a copy of config with blank fields set to
// fsm, Helvetica, LR and dot.
func NewGraph(config *Config) *Graph {
	c := *config
	if c.Name == "" {
		c.Name = "fsm"
	}
	if c.Font == "" {
		c.Font = Helvetica
	}
	if c.RankDir == "" {
		c.RankDir = LeftToRight
	}
	if c.Format == "" {
		c.Format = DOT
	}
	return &Graph{Config: &c}
}

func (w *Graph) writeState(a *fsm.Automaton, st fsm.State) error {
	node, err := w.g.CreateNodeByName(fmt.Sprintf("q%d", st))
	if err != nil {
		return err
	}
	shape := cgraph.CircleShape
	if a.IsFinal(st) {
		shape = cgraph.DoubleCircleShape
	}
	// SetFontName declares the attribute; Set on an undeclared one fails.
	node.SetShape(shape).SetLabel(StateName(a, st)).SetFontName(string(w.Font))
	w.nodes[st] = node
	return nil
}

func (w *Graph) writeStart(a *fsm.Automaton) error {
	node, err := w.g.CreateNodeByName("_start")
	if err != nil {
		return err
	}
	node.SetShape(cgraph.PointShape)
	_, err = w.g.CreateEdgeByName("_start", node, w.nodes[a.Start()])
	return err
}

// edgeKey groups parallel transitions into one labelled edge.
type edgeKey struct {
	from, to fsm.State
}

func (w *Graph) writeEdges(a *fsm.Automaton) error {
	var order []edgeKey
	labels := map[edgeKey][]string{}
	for _, t := range a.Transitions() {
		k := edgeKey{t.From, t.To}
		if _, ok := labels[k]; !ok {
			order = append(order, k)
		}
		labels[k] = append(labels[k], t.On.String())
	}
	for i, k := range order {
		edge, err := w.g.CreateEdgeByName(fmt.Sprintf("e%d", i), w.nodes[k.from], w.nodes[k.to])
		if err != nil {
			return err
		}
		edge.SetLabel(strings.Join(labels[k], ",")).SetFontName(string(w.Font))
	}
	return nil
}

// Flush renders a in the configured format to out.
func (w *Graph) Flush(ctx context.Context, out io.Writer, a *fsm.Automaton) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = gv.Close()
	}()
	g, err := gv.Graph(graphviz.WithName(w.Name))
	if err != nil {
		return err
	}
	defer func() {
		_ = g.Close()
	}()
	g.SetRankDir(cgraph.RankDir(w.RankDir))
	w.g = g
	w.nodes = make(map[fsm.State]*cgraph.Node, len(a.States()))

	for _, st := range a.States() {
		if err := w.writeState(a, st); err != nil {
			return err
		}
	}
	if err := w.writeStart(a); err != nil {
		return err
	}
	if err := w.writeEdges(a); err != nil {
		return err
	}
	return gv.Render(ctx, g, graphviz.Format(w.Format), out)
}
