package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccepts(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder) *Automaton
		in    string
		want  bool
	}{
		{"star empty", func(b *Builder) *Automaton { return b.Star(b.Char('a')) }, "", true},
		{"star many", func(b *Builder) *Automaton { return b.Star(b.Char('a')) }, "aaaa", true},
		{"concat ab", func(b *Builder) *Automaton { return b.Concat(b.Char('a'), b.Char('b')) }, "ab", true},
		{"concat ba", func(b *Builder) *Automaton { return b.Concat(b.Char('a'), b.Char('b')) }, "ba", false},
		{"concat prefix", func(b *Builder) *Automaton { return b.Concat(b.Char('a'), b.Char('b')) }, "a", false},
		{"union a", func(b *Builder) *Automaton { return b.Union(b.Char('a'), b.Char('b')) }, "a", true},
		{"union b", func(b *Builder) *Automaton { return b.Union(b.Char('a'), b.Char('b')) }, "b", true},
		{"union c", func(b *Builder) *Automaton { return b.Union(b.Char('a'), b.Char('b')) }, "c", false},
		{"union ab", func(b *Builder) *Automaton { return b.Union(b.Char('a'), b.Char('b')) }, "ab", false},
		{"char empty", func(b *Builder) *Automaton { return b.Char('a') }, "", false},
		{"unicode", func(b *Builder) *Automaton { return b.Concat(b.Char('ж'), b.Char('λ')) }, "жλ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.build(NewBuilder(nil))
			assert.Equal(t, tt.want, Accepts(r, tt.in))
			assert.Equal(t, tt.want, Accepts(ToDFA(r), tt.in), "dfa")
		})
	}
}

func TestAcceptsScenario(t *testing.T) {
	r := Star(Union(Char('a'), Char('b')))
	for _, w := range []string{"", "a", "abba"} {
		assert.True(t, Accepts(r, w), w)
	}
	assert.False(t, Accepts(r, "abc"))
	assert.False(t, AcceptsSymbols(r, []Symbol{'a', 'c', 'a'}))
}

func TestAcceptsEmptyFinal(t *testing.T) {
	a, err := New(Definition{
		Alphabet:    []Symbol{'a'},
		States:      []State{1, 2},
		Start:       1,
		Transitions: []Transition{{1, On('a'), 2}},
	})
	assert.NoError(t, err)
	assert.False(t, Accepts(a, ""))
	assert.False(t, Accepts(a, "a"))
}
