package dlist

import (
	"slices"
	"testing"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		want string
	}{
		{name: "empty", vals: nil, want: "[]"},
		{name: "single", vals: []int{1}, want: "[1]"},
		{name: "pair", vals: []int{1, 2}, want: "[2, 1]"},
		{name: "many", vals: []int{85, 90, 105, 108, 120}, want: "[120, 108, 105, 90, 85]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf(tt.vals...)
			l.Reverse()
			if got := l.String(); got != tt.want {
				t.Errorf("Reverse() = %q, want %q", got, tt.want)
			}
			checkLinks(t, l)

			l.Reverse()
			if got := values(l); !slices.Equal(got, tt.vals) {
				t.Errorf("Reverse twice = %v, want %v", got, tt.vals)
			}
			checkLinks(t, l)
		})
	}
}

func TestReverse_DropsFreedSlots(t *testing.T) {
	l := listOf(1, 2, 3, 4)
	_, _ = l.RemoveFront()
	_, _ = l.RemoveFront()

	l.Reverse()
	if len(l.nodes) != 2 || len(l.free) != 0 {
		t.Errorf("Expected a fresh arena of 2 nodes, got %d nodes and %d free", len(l.nodes), len(l.free))
	}
}

func TestRemoveDuplicates(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		want string
	}{
		{name: "empty", vals: nil, want: "[]"},
		{name: "no duplicates", vals: []int{1, 2, 3}, want: "[1, 2, 3]"},
		{name: "first occurrence kept", vals: []int{5, 3, 5, 2, 3}, want: "[5, 3, 2]"},
		{name: "all equal", vals: []int{7, 7, 7}, want: "[7]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf(tt.vals...)
			l.RemoveDuplicates()
			if got := l.String(); got != tt.want {
				t.Errorf("RemoveDuplicates() = %q, want %q", got, tt.want)
			}
			checkLinks(t, l)
		})
	}
}

func TestClone_IsIndependent(t *testing.T) {
	original := listOf(3, 1, 4, 1, 5)
	clone := original.Clone()

	if clone.String() != original.String() {
		t.Fatalf("Clone() = %q, want %q", clone, original)
	}

	clone.AddFront(9)
	clone.Reverse()
	if err := clone.DeleteByValue(4); err != nil {
		t.Fatalf("DeleteByValue(4) on clone failed: %v", err)
	}

	if got := original.String(); got != "[3, 1, 4, 1, 5]" {
		t.Errorf("original changed to %q after mutating the clone", got)
	}
	checkLinks(t, original)
	checkLinks(t, clone)
}

func TestSortedInsert(t *testing.T) {
	tests := []struct {
		name  string
		vals  []int
		value int
		want  string
	}{
		{name: "new maximum", vals: []int{5, 3, 1}, value: 9, want: "[9, 5, 3, 1]"},
		{name: "new minimum", vals: []int{5, 3, 1}, value: 0, want: "[5, 3, 1, 0]"},
		{name: "middle", vals: []int{5, 3, 1}, value: 4, want: "[5, 4, 3, 1]"},
		{name: "equal to head", vals: []int{5, 3, 1}, value: 5, want: "[5, 5, 3, 1]"},
		{name: "equal in middle", vals: []int{5, 3, 3, 1}, value: 3, want: "[5, 3, 3, 3, 1]"},
		{name: "equal to tail", vals: []int{5, 3}, value: 3, want: "[5, 3, 3]"},
		{name: "single equal", vals: []int{4}, value: 4, want: "[4, 4]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf(tt.vals...)
			l.SortedInsert(tt.value)
			if got := l.String(); got != tt.want {
				t.Errorf("SortedInsert(%d) = %q, want %q", tt.value, got, tt.want)
			}
			checkLinks(t, l)
		})
	}
}

// An empty list stays empty: SortedInsert only places values into an
// existing sequence.
func TestSortedInsert_EmptyListIsNoop(t *testing.T) {
	l := New[int]()
	l.SortedInsert(42)

	if !l.IsEmpty() {
		t.Errorf("Expected list to stay empty, got %s", l)
	}
	checkLinks(t, l)
}

func TestDemoSequence(t *testing.T) {
	l := New[int]()
	l.Enqueue(90)
	l.Enqueue(105)
	l.Enqueue(108)
	l.Push(85)
	l.Enqueue(120)

	if got := l.String(); got != "[85, 90, 105, 108, 120]" {
		t.Fatalf("after inserts = %q", got)
	}

	steps := []struct {
		apply func()
		want  string
	}{
		{apply: l.Reverse, want: "[120, 108, 105, 90, 85]"},
		{apply: func() { l.SortedInsert(110) }, want: "[120, 110, 108, 105, 90, 85]"},
		{apply: func() { l.SortedInsert(84) }, want: "[120, 110, 108, 105, 90, 85, 84]"},
		{apply: func() { l.SortedInsert(121) }, want: "[121, 120, 110, 108, 105, 90, 85, 84]"},
	}

	for i, step := range steps {
		step.apply()
		if got := l.String(); got != step.want {
			t.Errorf("step %d: String() = %q, want %q", i, got, step.want)
		}
		checkLinks(t, l)
	}
}
