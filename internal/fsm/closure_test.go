package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// abStar builds (a|b)* with a private allocator:
// a: 1->2, b: 3->4, union start 5, star start 6.
func abStar() *Automaton {
	b := NewBuilder(NewAllocator())
	return b.Star(b.Union(b.Char('a'), b.Char('b')))
}

func TestClosure(t *testing.T) {
	r := abStar()
	tests := []struct {
		in   StateSet
		want StateSet
	}{
		{StateSet{6}, StateSet{1, 3, 5, 6}},
		{StateSet{2}, StateSet{1, 2, 3, 5}},
		{StateSet{1}, StateSet{1}},
		{StateSet{2, 4}, StateSet{1, 2, 3, 4, 5}},
		{StateSet{}, StateSet{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Closure(tt.in), "closure of %s", tt.in)
	}
}

func TestClosureIdempotent(t *testing.T) {
	r := abStar()
	for _, st := range r.States() {
		once := r.Closure(StateSet{st})
		assert.Equal(t, once, r.Closure(once), "state %d", st)
	}
	all := r.Closure(r.States())
	assert.Equal(t, all, r.Closure(all))
}

func TestClosureTerminatesOnCycles(t *testing.T) {
	a, err := New(Definition{
		States:      []State{1, 2, 3},
		Start:       1,
		Transitions: []Transition{{1, Epsilon(), 2}, {2, Epsilon(), 3}, {3, Epsilon(), 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, StateSet{1, 2, 3}, a.Closure(StateSet{2}))
}

func TestMove(t *testing.T) {
	r := abStar()
	assert.Equal(t, StateSet{2}, r.Move(On('a'), StateSet{1, 3, 5, 6}))
	assert.Equal(t, StateSet{4}, r.Move(On('b'), StateSet{1, 3, 5, 6}))
	assert.Equal(t, StateSet{}, r.Move(On('a'), StateSet{2, 4}))
	assert.Equal(t, StateSet{5}, r.Move(Epsilon(), StateSet{2, 6}))
	assert.Equal(t, StateSet{1, 3}, r.Move(Epsilon(), StateSet{5}))
}

func TestMoveUnknownSymbol(t *testing.T) {
	r := abStar()
	assert.Empty(t, r.Move(On('z'), r.States()))
}
