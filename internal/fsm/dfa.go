package fsm

// subsetArena interns NFA subsets so each distinct subset becomes one DFA
// state. Subsets are compared through the arena index; the DFA state itself
// is minted from an Allocator so it never collides with other automata.
type subsetArena struct {
	ids   *Allocator
	index map[string]int
	sets  []StateSet
	names []State
}

func newSubsetArena(ids *Allocator) *subsetArena {
	return &subsetArena{ids: ids, index: make(map[string]int)}
}

// intern returns the arena index for s and whether s was seen for the first
// time.
func (ar *subsetArena) intern(s StateSet) (int, bool) {
	k := s.Key()
	if i, ok := ar.index[k]; ok {
		return i, false
	}
	i := len(ar.sets)
	ar.index[k] = i
	ar.sets = append(ar.sets, s)
	ar.names = append(ar.names, ar.ids.Fresh())
	return i, true
}

// ToDFA runs the subset construction on nfa. The result accepts the same
// language, has no epsilon transitions and exactly one transition for every
// state and symbol. Subsets that contain no NFA state become a dead state
// that loops to itself. DFA states are minted from b's Allocator, in the
// order their subsets are discovered, and Subset reports which NFA states
// each of them stands for.
//
// The number of DFA states can be exponential in the number of NFA states.
func (b *Builder) ToDFA(nfa *Automaton) *Automaton {
	arena := newSubsetArena(b.ids)
	start, _ := arena.intern(nfa.Closure(StateSet{nfa.start}))
	pending := []int{start}

	var trans []Transition
	for len(pending) > 0 {
		cur := pending[0]
		pending = pending[1:]
		subset := arena.sets[cur]
		for _, sym := range nfa.alphabet {
			next, fresh := arena.intern(nfa.step(On(sym), subset))
			trans = append(trans, Transition{From: arena.names[cur], On: On(sym), To: arena.names[next]})
			if fresh {
				pending = append(pending, next)
			}
		}
	}

	subsets := make(map[State]StateSet, len(arena.sets))
	var final []State
	for i, subset := range arena.sets {
		subsets[arena.names[i]] = subset
		if subset.Intersects(nfa.final) {
			final = append(final, arena.names[i])
		}
	}
	dfa := build(canonAlphabet(nfa.alphabet), NewStateSet(arena.names...), arena.names[start], NewStateSet(final...), trans)
	dfa.subsets = subsets
	return dfa
}
