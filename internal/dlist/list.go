// Package dlist implements a doubly linked list that works as a stack, a queue
// and a descending sorted sequence.
//
// Nodes are kept in an arena owned by the list and linked through integer
// handles, so removing a node never leaves a dangling reference behind: the
// slot is cleared and recycled by the next insertion. The zero value is an
// empty list ready to use.
//
// A List is not safe for concurrent use.
package dlist

import (
	"cmp"
	"fmt"
)

type List[T cmp.Ordered] struct {
	nodes []node[T]
	free  []handle
	head  handle
	tail  handle
	size  int
}

func New[T cmp.Ordered]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.head == none
}

// Head returns the first value, or false when the list is empty.
func (l *List[T]) Head() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	return l.at(l.head).value, true
}

// Tail returns the last value, or false when the list is empty.
func (l *List[T]) Tail() (T, bool) {
	if l.tail == none {
		var zero T
		return zero, false
	}
	return l.at(l.tail).value, true
}

// AddFront links a new node before the current head.
func (l *List[T]) AddFront(value T) {
	h := l.alloc(value)
	n := l.at(h)
	n.next = l.head

	if l.head == none {
		l.tail = h
	} else {
		l.at(l.head).prev = h
	}

	l.head = h
	l.size++
}

// AddBack links a new node after the current tail.
func (l *List[T]) AddBack(value T) {
	if l.head == none {
		l.AddFront(value)
		return
	}

	h := l.alloc(value)
	n := l.at(h)
	n.prev = l.tail
	l.at(l.tail).next = h
	l.tail = h
	l.size++
}

// RemoveFront unlinks the head and returns its value.
func (l *List[T]) RemoveFront() (T, error) {
	if l.head == none {
		var zero T
		return zero, ErrEmptyCollection
	}

	h := l.head
	value := l.at(h).value
	l.head = l.at(h).next

	if l.head == none {
		l.tail = none
	} else {
		l.at(l.head).prev = none
	}

	l.release(h)
	l.size--
	return value, nil
}

// Push adds value on top of the stack (the front of the list).
func (l *List[T]) Push(value T) { l.AddFront(value) }

// Pop removes the top of the stack.
func (l *List[T]) Pop() (T, error) { return l.RemoveFront() }

// Enqueue adds value at the back of the queue.
func (l *List[T]) Enqueue(value T) { l.AddBack(value) }

// Dequeue removes the front of the queue.
func (l *List[T]) Dequeue() (T, error) { return l.RemoveFront() }

// insertBefore splices a new node in front of at.
func (l *List[T]) insertBefore(at handle, value T) {
	h := l.alloc(value)
	prev := l.at(at).prev

	n := l.at(h)
	n.prev = prev
	n.next = at

	if prev == none {
		l.head = h
	} else {
		l.at(prev).next = h
	}
	l.at(at).prev = h
	l.size++
}

// unlink splices h out of the chain. h must belong to the list.
func (l *List[T]) unlink(h handle) error {
	if l.head == none {
		return ErrEmptyCollection
	}

	n := *l.at(h)
	if n.prev == none {
		l.head = n.next
	} else {
		l.at(n.prev).next = n.next
	}

	if n.next == none {
		l.tail = n.prev
	} else {
		l.at(n.next).prev = n.prev
	}

	l.release(h)
	l.size--
	return nil
}

// find returns the first node holding value, scanning from the head.
func (l *List[T]) find(value T) handle {
	for h := l.head; h != none; h = l.at(h).next {
		if l.at(h).value == value {
			return h
		}
	}
	return none
}

func (l *List[T]) Contains(value T) bool {
	return l.find(value) != none
}

// DeleteByValue removes the first node, from the head, that holds value.
func (l *List[T]) DeleteByValue(value T) error {
	if l.head == none {
		return ErrEmptyCollection
	}

	h := l.find(value)
	if h == none {
		return fmt.Errorf("%w: %v", ErrNotFound, value)
	}

	return l.unlink(h)
}

// DeleteAt removes the node at the 0-based position index.
func (l *List[T]) DeleteAt(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, l.size)
	}

	h := l.head
	for i := 0; i < index; i++ {
		h = l.at(h).next
	}

	return l.unlink(h)
}

// SortedInsert places value into a list kept in descending order, head being
// the largest. Equal values go after the ones already present. An empty list
// is left untouched.
func (l *List[T]) SortedInsert(value T) {
	if l.head == none {
		return
	}

	if l.at(l.head).value < value {
		l.AddFront(value)
		return
	}
	if l.at(l.tail).value > value {
		l.AddBack(value)
		return
	}

	cur := l.head
	for cur != none && l.at(cur).value >= value {
		cur = l.at(cur).next
	}

	if cur == none {
		l.AddBack(value)
		return
	}
	l.insertBefore(cur, value)
}
