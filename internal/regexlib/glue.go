package regexlib

import (
	"slices"
	"unicode/utf8"

	"fsmkit/internal/fsm"
)

// compiler turns a parsed pattern into a Thompson NFA, bottom-up.
type compiler struct {
	b *fsm.Builder
}

func (c *compiler) expr(e *astExpr) *fsm.Automaton {
	out := c.seq(e.Alts[0])
	for _, s := range e.Alts[1:] {
		out = c.b.Union(out, c.seq(s))
	}
	return out
}

func (c *compiler) seq(s *astSeq) *fsm.Automaton {
	out := c.term(s.Terms[0])
	for _, t := range s.Terms[1:] {
		out = c.b.Concat(out, c.term(t))
	}
	return out
}

// term builds the atom once and applies its postfix operators as one: a run
// containing '*' is x*, a run of '+' alone is x+.
func (c *compiler) term(t *astTerm) *fsm.Automaton {
	out := c.atom(t.Atom)
	switch {
	case len(t.Ops) == 0:
		return out
	case slices.Contains(t.Ops, "*"):
		return c.b.Star(out)
	default:
		return c.b.Plus(out)
	}
}

func (c *compiler) atom(a *astAtom) *fsm.Automaton {
	switch {
	case a.Group != nil:
		return c.expr(a.Group)
	case a.Escaped != nil:
		r, _ := utf8.DecodeRuneInString((*a.Escaped)[1:])
		return c.b.Char(fsm.Symbol(r))
	default:
		r, _ := utf8.DecodeRuneInString(*a.Char)
		return c.b.Char(fsm.Symbol(r))
	}
}
