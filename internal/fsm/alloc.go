package fsm

import "sync/atomic"

// Allocator hands out state ids. Fresh is safe for concurrent use.
type Allocator struct {
	last atomic.Int64
}

func NewAllocator() *Allocator { return &Allocator{} }

// Fresh returns 1 on the first call and one more on every later call.
func (al *Allocator) Fresh() State { return State(al.last.Add(1)) }

// Issued reports how many ids have been handed out.
func (al *Allocator) Issued() int { return int(al.last.Load()) }
