// Package render prints automata for people: a plain text dump and Graphviz
// figures.
package render

import (
	"fmt"
	"io"
	"strings"

	"fsmkit/internal/fsm"
)

const transHeader = "Transitions: ["

// Text writes the five fields of a, one per line, with the transitions
// listed one per line under their header. States of a DFA built by ToDFA
// are printed as the NFA subsets they stand for.
func Text(w io.Writer, a *fsm.Automaton) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Alphabet: %s\n", symbolList(a.Alphabet()))
	fmt.Fprintf(&b, "States: %s\n", stateList(a, a.States()))
	fmt.Fprintf(&b, "Start: %s\n", StateName(a, a.Start()))
	fmt.Fprintf(&b, "Final: %s\n", stateList(a, a.Final()))

	pad := strings.Repeat(" ", len(transHeader)+1)
	b.WriteString(transHeader + "\n")
	for _, t := range a.Transitions() {
		fmt.Fprintf(&b, "%s(%s, %s, %s)\n", pad, StateName(a, t.From), t.On, StateName(a, t.To))
	}
	b.WriteString(pad + "]\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// StateName is how st is shown to people: its number for an NFA, its subset
// of NFA states for a DFA built by ToDFA.
func StateName(a *fsm.Automaton, st fsm.State) string {
	if sub, ok := a.Subset(st); ok {
		return sub.String()
	}
	return st.String()
}

func stateList(a *fsm.Automaton, states fsm.StateSet) string {
	names := make([]string, len(states))
	for i, st := range states {
		names[i] = StateName(a, st)
	}
	return "[" + strings.Join(names, " ") + "]"
}

func symbolList(syms []fsm.Symbol) string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}
