package dlist

import (
	"errors"
	"slices"
	"testing"
)

func values(l *List[int]) []int {
	var out []int
	for h := l.head; h != none; h = l.at(h).next {
		out = append(out, l.at(h).value)
	}
	return out
}

// checkLinks walks the chain both ways and verifies every neighbour pair.
func checkLinks(t *testing.T, l *List[int]) {
	t.Helper()

	if (l.head == none) != (l.tail == none) {
		t.Fatalf("head %d and tail %d disagree on emptiness", l.head, l.tail)
	}
	if l.head == none {
		if l.size != 0 {
			t.Fatalf("empty list reports size %d", l.size)
		}
		return
	}
	if l.at(l.head).prev != none {
		t.Errorf("head.prev = %d, want none", l.at(l.head).prev)
	}
	if l.at(l.tail).next != none {
		t.Errorf("tail.next = %d, want none", l.at(l.tail).next)
	}

	count := 0
	for h := l.head; h != none; h = l.at(h).next {
		if next := l.at(h).next; next != none && l.at(next).prev != h {
			t.Errorf("node %d: next.prev = %d, want %d", h, l.at(next).prev, h)
		}
		count++
	}
	if count != l.size {
		t.Errorf("forward walk counted %d nodes, size is %d", count, l.size)
	}

	var backward []int
	for h := l.tail; h != none; h = l.at(h).prev {
		backward = append(backward, l.at(h).value)
	}
	slices.Reverse(backward)
	if !slices.Equal(backward, values(l)) {
		t.Errorf("backward walk %v, forward walk %v", backward, values(l))
	}
}

func listOf(vals ...int) *List[int] {
	l := New[int]()
	for _, v := range vals {
		l.AddBack(v)
	}
	return l
}

func TestAddBack_Renders(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		want string
	}{
		{name: "empty", vals: nil, want: "[]"},
		{name: "single", vals: []int{7}, want: "[7]"},
		{name: "many", vals: []int{1, 2, 3, 4}, want: "[1, 2, 3, 4]"},
		{name: "negative", vals: []int{-1, 0, -5}, want: "[-1, 0, -5]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf(tt.vals...)
			if got := l.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if l.Len() != len(tt.vals) {
				t.Errorf("Len() = %d, want %d", l.Len(), len(tt.vals))
			}
			checkLinks(t, l)
		})
	}
}

func TestZeroValueIsEmptyList(t *testing.T) {
	var l List[int]
	if !l.IsEmpty() {
		t.Error("Expected zero List to be empty")
	}

	l.AddBack(2)
	l.AddFront(1)
	if l.String() != "[1, 2]" {
		t.Errorf("String() = %q, want [1, 2]", l.String())
	}
	checkLinks(t, &l)
}

func TestStackAndQueue(t *testing.T) {
	l := New[int]()
	l.Push(1)
	l.Push(2)
	l.Enqueue(3)

	if head, _ := l.Head(); head != 2 {
		t.Errorf("Head() = %d, want 2", head)
	}
	if tail, _ := l.Tail(); tail != 3 {
		t.Errorf("Tail() = %d, want 3", tail)
	}

	for _, want := range []int{2, 1} {
		got, err := l.Pop()
		if err != nil {
			t.Fatalf("Pop() failed: %v", err)
		}
		if got != want {
			t.Errorf("Pop() = %d, want %d", got, want)
		}
		checkLinks(t, l)
	}

	got, err := l.Dequeue()
	if err != nil || got != 3 {
		t.Errorf("Dequeue() = %d, %v, want 3, nil", got, err)
	}
	if !l.IsEmpty() {
		t.Errorf("Expected list to be empty, got %s", l)
	}
	if _, ok := l.Head(); ok {
		t.Error("Expected Head() to report empty")
	}
	if _, ok := l.Tail(); ok {
		t.Error("Expected Tail() to report empty")
	}
	checkLinks(t, l)
}

func TestRemoveFront_ClearsNewHeadPrev(t *testing.T) {
	l := listOf(1, 2, 3)
	if _, err := l.RemoveFront(); err != nil {
		t.Fatalf("RemoveFront() failed: %v", err)
	}

	if prev := l.at(l.head).prev; prev != none {
		t.Errorf("new head prev = %d, want none", prev)
	}
	checkLinks(t, l)
}

func TestRemoveFront_Empty(t *testing.T) {
	l := New[int]()
	if _, err := l.RemoveFront(); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("RemoveFront() error = %v, want %v", err, ErrEmptyCollection)
	}
}

func TestUnlink_Empty(t *testing.T) {
	l := New[int]()
	if err := l.unlink(1); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("unlink() error = %v, want %v", err, ErrEmptyCollection)
	}
}

func TestDeleteByValue(t *testing.T) {
	tests := []struct {
		name    string
		vals    []int
		target  int
		want    string
		wantErr error
	}{
		{name: "head", vals: []int{1, 2, 3}, target: 1, want: "[2, 3]"},
		{name: "middle", vals: []int{1, 2, 3}, target: 2, want: "[1, 3]"},
		{name: "tail", vals: []int{1, 2, 3}, target: 3, want: "[1, 2]"},
		{name: "only node", vals: []int{4}, target: 4, want: "[]"},
		{name: "first of duplicates", vals: []int{5, 1, 5}, target: 5, want: "[1, 5]"},
		{name: "missing", vals: []int{1, 2, 3}, target: 9, want: "[1, 2, 3]", wantErr: ErrNotFound},
		{name: "empty", vals: nil, target: 1, want: "[]", wantErr: ErrEmptyCollection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf(tt.vals...)
			err := l.DeleteByValue(tt.target)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("DeleteByValue(%d) error = %v, want %v", tt.target, err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("DeleteByValue(%d) failed: %v", tt.target, err)
			}

			if got := l.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			checkLinks(t, l)
		})
	}
}

func TestDeleteAt(t *testing.T) {
	tests := []struct {
		name    string
		vals    []int
		index   int
		want    string
		wantErr error
	}{
		{name: "first", vals: []int{10, 20, 30}, index: 0, want: "[20, 30]"},
		{name: "middle", vals: []int{10, 20, 30}, index: 1, want: "[10, 30]"},
		{name: "last", vals: []int{10, 20, 30}, index: 2, want: "[10, 20]"},
		{name: "only node", vals: []int{10}, index: 0, want: "[]"},
		{name: "negative", vals: []int{10, 20, 30}, index: -1, want: "[10, 20, 30]", wantErr: ErrIndexOutOfRange},
		{name: "at length", vals: []int{10, 20, 30}, index: 3, want: "[10, 20, 30]", wantErr: ErrIndexOutOfRange},
		{name: "beyond length", vals: []int{10, 20, 30}, index: 8, want: "[10, 20, 30]", wantErr: ErrIndexOutOfRange},
		{name: "empty", vals: nil, index: 0, want: "[]", wantErr: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf(tt.vals...)
			err := l.DeleteAt(tt.index)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("DeleteAt(%d) error = %v, want %v", tt.index, err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("DeleteAt(%d) failed: %v", tt.index, err)
			}

			if got := l.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			checkLinks(t, l)
		})
	}
}

func TestFreedSlotsAreReused(t *testing.T) {
	l := listOf(1, 2, 3)
	if err := l.DeleteAt(1); err != nil {
		t.Fatalf("DeleteAt(1) failed: %v", err)
	}
	if len(l.free) != 1 {
		t.Fatalf("Expected 1 free slot, got %d", len(l.free))
	}

	l.AddFront(0)
	if len(l.nodes) != 3 {
		t.Errorf("Expected arena to stay at 3 slots, got %d", len(l.nodes))
	}
	if len(l.free) != 0 {
		t.Errorf("Expected free list to be drained, got %d", len(l.free))
	}
	if got := l.String(); got != "[0, 1, 3]" {
		t.Errorf("String() = %q, want [0, 1, 3]", got)
	}
	checkLinks(t, l)
}

func TestContains(t *testing.T) {
	l := listOf(4, 8, 15)
	if !l.Contains(8) {
		t.Error("Expected Contains(8) to be true")
	}
	if l.Contains(16) {
		t.Error("Expected Contains(16) to be false")
	}
	if New[int]().Contains(0) {
		t.Error("Expected empty list to contain nothing")
	}
}

func TestStringValues(t *testing.T) {
	l := New[string]()
	l.AddBack("b")
	l.AddFront("c")
	l.SortedInsert("a")

	if got := l.String(); got != "[c, b, a]" {
		t.Errorf("String() = %q, want [c, b, a]", got)
	}
}
