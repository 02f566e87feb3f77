package regexlib

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"fsmkit/internal/fsm"
)

// ------------------------------------------------------------------- helpers

func acc(t *testing.T, re *Regex, in string, want bool) {
	t.Helper()
	if got := re.MatchString(in); got != want {
		t.Fatalf("pattern %q on %q want %v got %v", re, in, want, got)
	}
	if got := re.MatchNFA(in); got != want {
		t.Fatalf("pattern %q on %q (nfa) want %v got %v", re, in, want, got)
	}
}

func newRE(t *testing.T, pat string) *Regex {
	t.Helper()
	re, err := Compile(pat)
	if err != nil {
		t.Fatalf("compile %q: %v", pat, err)
	}
	return re
}

// ------------------------------------------------------------------- Parser

func TestParserPrecedence(t *testing.T) {
	re := newRE(t, "a|bc*")
	acc(t, re, "a", true)
	acc(t, re, "b", true)
	acc(t, re, "bccc", true)
	acc(t, re, "ab", false)
	acc(t, re, "ac", false)
}

func TestParserGroups(t *testing.T) {
	re := newRE(t, "(a|b)*c")
	acc(t, re, "c", true)
	acc(t, re, "ababc", true)
	acc(t, re, "abab", false)
	acc(t, re, "cc", false)
}

func TestPlus(t *testing.T) {
	re := newRE(t, "ab+")
	acc(t, re, "a", false)
	acc(t, re, "ab", true)
	acc(t, re, "abbbb", true)

	re = newRE(t, "(ab)+*")
	acc(t, re, "", true)
	acc(t, re, "abab", true)
	acc(t, re, "aba", false)

	re = newRE(t, "(a|b)+c")
	acc(t, re, "c", false)
	acc(t, re, "abbac", true)
}

func TestRepeatedPostfixStaysLinear(t *testing.T) {
	re := newRE(t, "a"+strings.Repeat("+", 40))
	if n := len(re.NFA().States()); n != 2 {
		t.Fatalf("a+...+ built %d NFA states, want 2", n)
	}
	acc(t, re, "", false)
	acc(t, re, "aaa", true)

	re = newRE(t, "a+*+")
	if n := len(re.NFA().States()); n != 3 {
		t.Fatalf("a+*+ built %d NFA states, want 3", n)
	}
	acc(t, re, "", true)
	acc(t, re, "aa", true)
}

func TestEscapes(t *testing.T) {
	re := newRE(t, `a\*\|\(`)
	acc(t, re, "a*|(", true)
	acc(t, re, "a", false)
	acc(t, re, "aa", false)
}

func TestLiteralWhitespaceAndUnicode(t *testing.T) {
	re := newRE(t, "я b*")
	acc(t, re, "я ", true)
	acc(t, re, "я bb", true)
	acc(t, re, "яb", false)
}

func TestCompileErrors(t *testing.T) {
	if _, err := Compile(""); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("empty pattern: got %v", err)
	}
	for _, pat := range []string{"*a", "a|", "|a", "()", "(a", "a)", `a\`, "a**(|b)"} {
		if _, err := Compile(pat); err == nil {
			t.Fatalf("pattern %q should not compile", pat)
		}
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCompile on bad pattern did not panic")
		}
	}()
	MustCompile("(")
}

// ------------------------------------------------------------------- NFA ←→ DFA

func TestNFAtoDFAEquivalence(t *testing.T) {
	for _, pat := range []string{"(ab|a)*c", "a(b|c)*d", "(a*b*)*", "a+b|ba+"} {
		re := newRE(t, pat)

		// every word of length ≤4 over {a,b,c,d}
		alpha := []string{"", "a", "b", "c", "d"}
		for _, x := range alpha {
			for _, y := range alpha {
				for _, z := range alpha {
					for _, w := range alpha {
						s := x + y + z + w
						if re.MatchNFA(s) != re.MatchString(s) {
							t.Fatalf("%q: equivalence fail on %q", pat, s)
						}
					}
				}
			}
		}
	}
}

func TestDFAIsDeterministic(t *testing.T) {
	re := newRE(t, "a(b|c)*d")
	if !re.DFA().Deterministic() {
		t.Fatal("subset construction produced a nondeterministic automaton")
	}
	if re.NFA().Deterministic() {
		t.Fatal("thompson NFA unexpectedly deterministic")
	}
}

func TestSharedBuilder(t *testing.T) {
	b := fsm.NewBuilder(fsm.NewAllocator())
	left := MustCompile("ab", WithBuilder(b))
	right := MustCompile("ba", WithBuilder(b))
	either := b.Union(left.NFA(), right.NFA())
	if !fsm.Accepts(either, "ab") || !fsm.Accepts(either, "ba") || fsm.Accepts(either, "aa") {
		t.Fatal("union of patterns compiled with one builder is wrong")
	}
}

func TestCompiledAutomataCompose(t *testing.T) {
	left, right := MustCompile("a"), MustCompile("b")
	either := fsm.Union(left.NFA(), right.NFA())
	if !fsm.Accepts(either, "a") || !fsm.Accepts(either, "b") || fsm.Accepts(either, "ab") {
		t.Fatal("union of independently compiled patterns is wrong")
	}

	// DFAs draw their states from the same allocator, so they compose too.
	both := fsm.Concat(left.DFA(), right.DFA())
	if !fsm.Accepts(both, "ab") || fsm.Accepts(both, "a") {
		t.Fatal("concatenation of compiled DFAs is wrong")
	}
}

func TestCompileLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	MustCompile("(a|b)*", WithLogger(zap.New(core)))
	entries := logs.FilterMessage("compiled pattern").All()
	if len(entries) != 1 {
		t.Fatalf("want 1 log entry got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["pattern"] != "(a|b)*" || fields["dfa_states"] != int64(3) {
		t.Fatalf("unexpected fields %v", fields)
	}
}

// ------------------------------------------------------------------- Bench (quick)

func BenchmarkMillionAs(b *testing.B) {
	re := MustCompile("ab*|a*")
	txt := strings.Repeat("a", 1_000_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = re.MatchString(txt)
	}
}
