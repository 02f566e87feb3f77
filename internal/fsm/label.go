package fsm

import (
	"strconv"
	"unicode/utf8"
)

// Symbol is one letter of an automaton's alphabet.
type Symbol rune

// Valid reports whether s is a Unicode scalar value.
func (s Symbol) Valid() bool { return utf8.ValidRune(rune(s)) }

func (s Symbol) String() string { return string(rune(s)) }

// Label is what a transition consumes: a single Symbol, or nothing for an
// epsilon transition.
type Label struct {
	sym Symbol
	eps bool
}

// Epsilon labels a transition that consumes no input.
func Epsilon() Label { return Label{eps: true} }

// On labels a transition consuming sym.
func On(sym Symbol) Label { return Label{sym: sym} }

func (l Label) IsEpsilon() bool { return l.eps }

// Symbol returns the consumed symbol; ok is false for epsilon.
func (l Label) Symbol() (sym Symbol, ok bool) {
	if l.eps {
		return 0, false
	}
	return l.sym, true
}

func (l Label) String() string {
	if l.eps {
		return "ε"
	}
	return l.sym.String()
}

// State identifies a state. In an NFA it is minted by an Allocator; in a DFA
// it indexes the subset of NFA states the DFA state stands for.
type State int

func (s State) String() string { return strconv.Itoa(int(s)) }

// Transition is one edge of the transition relation.
type Transition struct {
	From State
	On   Label
	To   State
}

func (t Transition) String() string {
	return "(" + t.From.String() + ", " + t.On.String() + ", " + t.To.String() + ")"
}
