package fsm

// Accepts reports whether a accepts input, read one rune at a time. It works
// on NFAs and DFAs alike. Runes outside the alphabet are not errors; they
// lead nowhere and so the input is rejected.
func Accepts(a *Automaton, input string) bool {
	syms := make([]Symbol, 0, len(input))
	for _, r := range input {
		syms = append(syms, Symbol(r))
	}
	return AcceptsSymbols(a, syms)
}

// AcceptsSymbols is Accepts over an already split input.
func AcceptsSymbols(a *Automaton, input []Symbol) bool {
	cur := a.Closure(StateSet{a.start})
	for _, sym := range input {
		if len(cur) == 0 {
			return false
		}
		cur = a.step(On(sym), cur)
	}
	return cur.Intersects(a.final)
}
