package fsm

// Closure returns every state reachable from s through zero or more epsilon
// transitions.
func (a *Automaton) Closure(s StateSet) StateSet {
	seen := make(map[State]struct{}, len(s))
	stack := make([]State, 0, len(s))
	for _, st := range s {
		if _, ok := seen[st]; !ok {
			seen[st] = struct{}{}
			stack = append(stack, st)
		}
	}
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.out[st] {
			if !t.On.IsEpsilon() {
				continue
			}
			if _, ok := seen[t.To]; !ok {
				seen[t.To] = struct{}{}
				stack = append(stack, t.To)
			}
		}
	}
	return fromSeen(seen)
}

// Move returns the states reachable from s by exactly one transition
// labelled on. A symbol outside the alphabet reaches nothing.
func (a *Automaton) Move(on Label, s StateSet) StateSet {
	if sym, ok := on.Symbol(); ok && !a.HasSymbol(sym) {
		return StateSet{}
	}
	seen := make(map[State]struct{})
	for _, st := range s {
		for _, t := range a.out[st] {
			if t.On == on {
				seen[t.To] = struct{}{}
			}
		}
	}
	return fromSeen(seen)
}

// step is Closure(Move(on, s)), the successor used by both simulation and
// the subset construction.
func (a *Automaton) step(on Label, s StateSet) StateSet {
	return a.Closure(a.Move(on, s))
}
