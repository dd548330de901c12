package dlist

import (
	"fmt"
	"strings"
)

// Reverse rebuilds the chain in the opposite order. The old nodes are
// discarded.
func (l *List[T]) Reverse() {
	reversed := New[T]()
	for h := l.tail; h != none; h = l.at(h).prev {
		reversed.AddBack(l.at(h).value)
	}

	*l = *reversed
}

// RemoveDuplicates keeps the first occurrence of every value, preserving the
// relative order.
func (l *List[T]) RemoveDuplicates() {
	unique := New[T]()
	for h := l.head; h != none; h = l.at(h).next {
		value := l.at(h).value
		if !unique.Contains(value) {
			unique.AddBack(value)
		}
	}

	*l = *unique
}

// Clone returns a deep copy sharing no nodes with l.
func (l *List[T]) Clone() *List[T] {
	copied := New[T]()
	for h := l.head; h != none; h = l.at(h).next {
		copied.AddBack(l.at(h).value)
	}

	return copied
}

// String renders the values head to tail, e.g. "[3, 2, 1]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for h := l.head; h != none; h = l.at(h).next {
		if h != l.head {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, l.at(h).value)
	}
	b.WriteByte(']')

	return b.String()
}
