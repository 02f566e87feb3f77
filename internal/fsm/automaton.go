// Package fsm builds finite automata with Thompson's construction, turns them
// into deterministic automata with the subset construction, and simulates
// them on input strings.
//
// An Automaton never changes once built. The combinators copy their operands
// into a new value; the operands should not be composed again afterwards, and
// doing so panics with ErrSharedState because their states are already part
// of the result.
package fsm

import (
	"slices"
)

// Definition is the plain-data form of an automaton, used to build one from
// outside the package and to read one back.
type Definition struct {
	Alphabet    []Symbol
	States      []State
	Start       State
	Final       []State
	Transitions []Transition
}

type Automaton struct {
	alphabet    []Symbol
	states      StateSet
	start       State
	final       StateSet
	transitions []Transition

	// subsets maps each DFA state built by ToDFA to the NFA subset it
	// stands for; nil for every other automaton.
	subsets map[State]StateSet
	// out indexes transitions by source state.
	out map[State][]Transition
}

// New validates def and builds an automaton from it.
func New(def Definition) (*Automaton, error) {
	for _, sym := range def.Alphabet {
		if !sym.Valid() {
			return nil, invalidf("alphabet symbol %U is not a valid rune", rune(sym))
		}
	}
	alphabet := canonAlphabet(def.Alphabet)
	states := NewStateSet(def.States...)
	if !states.Contains(def.Start) {
		return nil, invalidf("start state %d not in states", def.Start)
	}
	final := NewStateSet(def.Final...)
	for _, f := range final {
		if !states.Contains(f) {
			return nil, invalidf("final state %d not in states", f)
		}
	}
	for _, t := range def.Transitions {
		if !states.Contains(t.From) || !states.Contains(t.To) {
			return nil, invalidf("transition %s references an unknown state", t)
		}
		if sym, ok := t.On.Symbol(); ok {
			if _, found := slices.BinarySearch(alphabet, sym); !found {
				return nil, invalidf("transition %s uses a symbol outside the alphabet", t)
			}
		}
	}
	return build(alphabet, states, def.Start, final, slices.Clone(def.Transitions)), nil
}

// build assembles an automaton from already canonical, already valid parts.
// It takes ownership of its arguments.
func build(alphabet []Symbol, states StateSet, start State, final StateSet, transitions []Transition) *Automaton {
	a := &Automaton{
		alphabet:    alphabet,
		states:      states,
		start:       start,
		final:       final,
		transitions: transitions,
		out:         make(map[State][]Transition, len(states)),
	}
	for _, t := range transitions {
		a.out[t.From] = append(a.out[t.From], t)
	}
	return a
}

func canonAlphabet(syms []Symbol) []Symbol {
	out := slices.Clone(syms)
	slices.Sort(out)
	return slices.Compact(out)
}

// Alphabet returns the sorted alphabet.
func (a *Automaton) Alphabet() []Symbol { return slices.Clone(a.alphabet) }

func (a *Automaton) States() StateSet { return slices.Clone(a.states) }

func (a *Automaton) Start() State { return a.start }

func (a *Automaton) Final() StateSet { return slices.Clone(a.final) }

func (a *Automaton) Transitions() []Transition { return slices.Clone(a.transitions) }

// Definition returns a copy of the automaton's fields.
func (a *Automaton) Definition() Definition {
	return Definition{
		Alphabet:    a.Alphabet(),
		States:      a.States(),
		Start:       a.start,
		Final:       a.Final(),
		Transitions: a.Transitions(),
	}
}

func (a *Automaton) IsFinal(st State) bool { return a.final.Contains(st) }

func (a *Automaton) HasSymbol(sym Symbol) bool {
	_, ok := slices.BinarySearch(a.alphabet, sym)
	return ok
}

// Subset returns the NFA states a DFA state built by ToDFA stands for. ok is
// false for automata not produced by ToDFA.
func (a *Automaton) Subset(st State) (StateSet, bool) {
	sub, ok := a.subsets[st]
	if !ok {
		return nil, false
	}
	return slices.Clone(sub), true
}

// Deterministic reports whether a has no epsilon transitions and exactly one
// transition per state and alphabet symbol.
func (a *Automaton) Deterministic() bool {
	type edge struct {
		from State
		sym  Symbol
	}
	seen := make(map[edge]struct{}, len(a.transitions))
	for _, t := range a.transitions {
		sym, ok := t.On.Symbol()
		if !ok {
			return false
		}
		e := edge{t.From, sym}
		if _, dup := seen[e]; dup {
			return false
		}
		seen[e] = struct{}{}
	}
	return len(seen) == len(a.states)*len(a.alphabet)
}
