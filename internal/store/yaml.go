// Package store reads and writes automata as YAML documents:
//
//	alphabet: [a, b]
//	states: [1, 2, 3]
//	start: 1
//	final: [3]
//	transitions:
//	  - {from: 1, symbol: a, to: 2}
//	  - {from: 2, to: 3}        # no symbol: epsilon
package store

import (
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"fsmkit/internal/fsm"
)

type document struct {
	Alphabet    []string     `yaml:"alphabet,flow"`
	States      []int        `yaml:"states,flow"`
	Start       int          `yaml:"start"`
	Final       []int        `yaml:"final,flow"`
	Transitions []transition `yaml:"transitions"`
}

type transition struct {
	From   int     `yaml:"from"`
	Symbol *string `yaml:"symbol,omitempty"`
	To     int     `yaml:"to"`
}

// Load decodes one automaton from r. The automaton is checked the same way
// fsm.New checks it, so a malformed file yields fsm.ErrInvalidAutomaton.
func Load(r io.Reader) (*fsm.Automaton, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode automaton: %w", err)
	}

	def := fsm.Definition{Start: fsm.State(doc.Start)}
	for _, s := range doc.Alphabet {
		sym, err := symbol(s)
		if err != nil {
			return nil, err
		}
		def.Alphabet = append(def.Alphabet, sym)
	}
	for _, st := range doc.States {
		def.States = append(def.States, fsm.State(st))
	}
	for _, st := range doc.Final {
		def.Final = append(def.Final, fsm.State(st))
	}
	for _, t := range doc.Transitions {
		on := fsm.Epsilon()
		if t.Symbol != nil {
			sym, err := symbol(*t.Symbol)
			if err != nil {
				return nil, err
			}
			on = fsm.On(sym)
		}
		def.Transitions = append(def.Transitions, fsm.Transition{From: fsm.State(t.From), On: on, To: fsm.State(t.To)})
	}
	return fsm.New(def)
}

// Flush encodes a to w.
func Flush(w io.Writer, a *fsm.Automaton) error {
	def := a.Definition()
	doc := document{
		Start:       int(def.Start),
		Alphabet:    make([]string, 0, len(def.Alphabet)),
		States:      make([]int, 0, len(def.States)),
		Final:       make([]int, 0, len(def.Final)),
		Transitions: make([]transition, 0, len(def.Transitions)),
	}
	for _, s := range def.Alphabet {
		doc.Alphabet = append(doc.Alphabet, s.String())
	}
	for _, st := range def.States {
		doc.States = append(doc.States, int(st))
	}
	for _, st := range def.Final {
		doc.Final = append(doc.Final, int(st))
	}
	for _, t := range def.Transitions {
		tr := transition{From: int(t.From), To: int(t.To)}
		if sym, ok := t.On.Symbol(); ok {
			s := sym.String()
			tr.Symbol = &s
		}
		doc.Transitions = append(doc.Transitions, tr)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func symbol(s string) (fsm.Symbol, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("%w: symbol %q must be exactly one character", fsm.ErrInvalidAutomaton, s)
	}
	return fsm.Symbol(r), nil
}
