package dlist

import "cmp"

// handle addresses a node in the list's arena. The zero handle means "no node".
type handle int

const none handle = 0

type node[T cmp.Ordered] struct {
	value T
	prev  handle
	next  handle
}

// at returns the node behind h. Pointers into the arena are only valid until
// the next alloc, which may grow the slice.
func (l *List[T]) at(h handle) *node[T] {
	return &l.nodes[h-1]
}

// alloc hands out a slot for value, reusing a freed one when available.
func (l *List[T]) alloc(value T) handle {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		*l.at(h) = node[T]{value: value}
		return h
	}

	l.nodes = append(l.nodes, node[T]{value: value})
	return handle(len(l.nodes))
}

// release tombstones the slot and puts it on the free list.
func (l *List[T]) release(h handle) {
	*l.at(h) = node[T]{}
	l.free = append(l.free, h)
}
