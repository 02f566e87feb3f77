package regexlib

// Pattern syntax:
//
//	expr := seq ('|' seq)*
//	seq  := term+
//	term := atom ('*' | '+')*
//	atom := Char | Escaped | '(' expr ')'
//
// There is no way to write the empty string: "", "a|" and "()" do not parse.

type astExpr struct {
	Alts []*astSeq `parser:"@@ ( '|' @@ )*"`
}

type astSeq struct {
	Terms []*astTerm `parser:"@@+"`
}

type astTerm struct {
	Atom *astAtom `parser:"@@"`
	Ops  []string `parser:"@( '*' | '+' )*"`
}

type astAtom struct {
	Char    *string  `parser:"  @Char"`
	Escaped *string  `parser:"| @Escaped"`
	Group   *astExpr `parser:"| '(' @@ ')'"`
}
