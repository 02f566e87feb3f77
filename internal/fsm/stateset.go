package fsm

import (
	"slices"
	"strconv"
	"strings"
)

// StateSet is a sorted set of states without duplicates. Two sets holding the
// same states are equal element by element and share the same Key.
type StateSet []State

// NewStateSet canonicalises states into a StateSet. The argument is not
// modified.
func NewStateSet(states ...State) StateSet {
	out := make(StateSet, len(states))
	copy(out, states)
	slices.Sort(out)
	return slices.Compact(out)
}

func (s StateSet) Len() int { return len(s) }

func (s StateSet) Contains(st State) bool {
	_, ok := slices.BinarySearch(s, st)
	return ok
}

// Intersects reports whether s and o share at least one state.
func (s StateSet) Intersects(o StateSet) bool {
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] == o[j]:
			return true
		case s[i] < o[j]:
			i++
		default:
			j++
		}
	}
	return false
}

func (s StateSet) Equal(o StateSet) bool { return slices.Equal(s, o) }

// Key is a string form usable as a map key when interning subsets.
func (s StateSet) Key() string {
	var b strings.Builder
	for i, st := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(st)))
	}
	return b.String()
}

func (s StateSet) String() string { return "{" + s.Key() + "}" }

// disjointUnion merges two sets. ok is false if they share a state.
func disjointUnion(a, b StateSet) (out StateSet, ok bool) {
	out = make(StateSet, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return nil, false
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...), true
}

// fromSeen turns a membership map into a canonical set.
func fromSeen(seen map[State]struct{}) StateSet {
	out := make(StateSet, 0, len(seen))
	for st := range seen {
		out = append(out, st)
	}
	slices.Sort(out)
	return out
}
