package fsm

import (
	"fmt"
	"slices"
)

// Builder applies Thompson's construction, minting states from one
// Allocator. Automata combined by a Builder must come from the same
// Allocator so their states are disjoint.
type Builder struct {
	ids *Allocator
}

// processIDs mints every state not built from a caller's own Allocator, so
// any two such automata are disjoint.
var processIDs = NewAllocator()

// NewBuilder returns a Builder using ids, or the process-wide Allocator if
// ids is nil. Only automata built from a private Allocator can collide with
// others, and only with automata from a different Allocator.
func NewBuilder(ids *Allocator) *Builder {
	if ids == nil {
		ids = processIDs
	}
	return &Builder{ids: ids}
}

var defaultBuilder = NewBuilder(nil)

// Char, Concat, Union, Star, Plus and ToDFA use the process-wide default
// Builder.
func Char(sym Symbol) *Automaton { return defaultBuilder.Char(sym) }
func Concat(r1, r2 *Automaton) *Automaton { return defaultBuilder.Concat(r1, r2) }
func Union(r1, r2 *Automaton) *Automaton { return defaultBuilder.Union(r1, r2) }
func Star(r1 *Automaton) *Automaton { return defaultBuilder.Star(r1) }
func Plus(r1 *Automaton) *Automaton { return defaultBuilder.Plus(r1) }
func ToDFA(nfa *Automaton) *Automaton { return defaultBuilder.ToDFA(nfa) }

// Char recognises exactly sym. It panics if sym is not a valid rune.
func (b *Builder) Char(sym Symbol) *Automaton {
	if !sym.Valid() {
		panic(fmt.Errorf("%w: %U", ErrInvalidSymbol, rune(sym)))
	}
	start := b.ids.Fresh()
	accept := b.ids.Fresh()
	return build(
		[]Symbol{sym},
		StateSet{start, accept},
		start,
		StateSet{accept},
		[]Transition{{From: start, On: On(sym), To: accept}},
	)
}

// Concat recognises r1 followed by r2.
func (b *Builder) Concat(r1, r2 *Automaton) *Automaton {
	states := mustDisjoint(r1.states, r2.states)
	trans := make([]Transition, 0, len(r1.transitions)+len(r2.transitions)+len(r1.final))
	trans = append(trans, r1.transitions...)
	trans = append(trans, r2.transitions...)
	for _, f := range r1.final {
		trans = append(trans, Transition{From: f, On: Epsilon(), To: r2.start})
	}
	return build(mergeAlphabets(r1.alphabet, r2.alphabet), states, r1.start, slices.Clone(r2.final), trans)
}

// Union recognises r1 or r2.
func (b *Builder) Union(r1, r2 *Automaton) *Automaton {
	inner := mustDisjoint(r1.states, r2.states)
	start := b.ids.Fresh()
	states := mustDisjoint(StateSet{start}, inner)
	final, _ := disjointUnion(r1.final, r2.final)

	trans := make([]Transition, 0, len(r1.transitions)+len(r2.transitions)+2)
	trans = append(trans, r1.transitions...)
	trans = append(trans, r2.transitions...)
	trans = append(trans,
		Transition{From: start, On: Epsilon(), To: r1.start},
		Transition{From: start, On: Epsilon(), To: r2.start},
	)
	return build(mergeAlphabets(r1.alphabet, r2.alphabet), states, start, final, trans)
}

// Star recognises zero or more repetitions of r1.
func (b *Builder) Star(r1 *Automaton) *Automaton {
	start := b.ids.Fresh()
	states := mustDisjoint(StateSet{start}, r1.states)
	final := mustDisjoint(StateSet{start}, r1.final)

	trans := make([]Transition, 0, len(r1.transitions)+len(r1.final)+1)
	trans = append(trans, r1.transitions...)
	trans = append(trans, Transition{From: start, On: Epsilon(), To: r1.start})
	for _, f := range r1.final {
		trans = append(trans, Transition{From: f, On: Epsilon(), To: r1.start})
	}
	return build(slices.Clone(r1.alphabet), states, start, final, trans)
}

// Plus recognises one or more repetitions of r1. It loops every final state
// of r1 back to its start and mints no state.
func (b *Builder) Plus(r1 *Automaton) *Automaton {
	trans := make([]Transition, 0, len(r1.transitions)+len(r1.final))
	trans = append(trans, r1.transitions...)
	for _, f := range r1.final {
		trans = append(trans, Transition{From: f, On: Epsilon(), To: r1.start})
	}
	return build(slices.Clone(r1.alphabet), slices.Clone(r1.states), r1.start, slices.Clone(r1.final), trans)
}

func mustDisjoint(a, b StateSet) StateSet {
	out, ok := disjointUnion(a, b)
	if !ok {
		panic(ErrSharedState)
	}
	return out
}

func mergeAlphabets(a, b []Symbol) []Symbol {
	out := make([]Symbol, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return canonAlphabet(out)
}
