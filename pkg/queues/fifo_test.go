package queues

import "testing"

// Interface compliance check
var _ Queue[string] = (*FIFO[string])(nil)

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewFIFO(t *testing.T) {
	tests := []struct {
		name     string
		seed     []int
		wantSize int
	}{
		{"empty", nil, 0},
		{"single", []int{42}, 1},
		{"several", []int{3, 4, 5}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewFIFO(tt.seed...)
			if got := q.Size(); got != tt.wantSize {
				t.Errorf("Size() = %d, want %d", got, tt.wantSize)
			}
			if got := q.IsEmpty(); got != (tt.wantSize == 0) {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.wantSize == 0)
			}
		})
	}
}

func TestNewFIFO_SeedOrder(t *testing.T) {
	// The first seed argument is the oldest element.
	q := NewFIFO(3, 4, 5)

	got, err := q.Peek()
	if err != nil {
		t.Fatalf("Peek() error = %v", err)
	}
	if got != 3 {
		t.Errorf("Peek() = %d, want 3", got)
	}
}

// =============================================================================
// Add / Remove Tests
// =============================================================================

func TestFIFO_Add_NeverFailsNorEvicts(t *testing.T) {
	q := NewFIFO[int]()
	for i := 0; i < 1000; i++ {
		evicted, wasEvicted, err := q.Add(i)
		if err != nil {
			t.Fatalf("Add(%d) error = %v", i, err)
		}
		if wasEvicted {
			t.Fatalf("Add(%d) evicted %d, want no eviction", i, evicted)
		}
	}
	if got := q.Size(); got != 1000 {
		t.Errorf("Size() = %d, want 1000", got)
	}
}

func TestFIFO_RemovalOrder(t *testing.T) {
	// FIFO law: N adds followed by N removes yield the insertion order.
	q := NewFIFO[int]()
	items := []int{1, -2, 3, 7, 0, -2}
	for _, item := range items {
		_, _, _ = q.Add(item)
	}

	for i, want := range items {
		got, err := q.Remove()
		if err != nil {
			t.Fatalf("Remove() #%d error = %v", i, err)
		}
		if got != want {
			t.Errorf("Remove() #%d = %d, want %d", i, got, want)
		}
	}
	if got := q.Size(); got != 0 {
		t.Errorf("Size() after draining = %d, want 0", got)
	}
}

func TestFIFO_Remove_Empty(t *testing.T) {
	q := NewFIFO[int]()
	if _, err := q.Remove(); err != ErrEmpty {
		t.Errorf("Remove() error = %v, want ErrEmpty", err)
	}

	// Drained queues behave like new ones.
	_, _, _ = q.Add(42)
	if _, err := q.Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := q.Remove(); err != ErrEmpty {
		t.Errorf("Remove() after drain error = %v, want ErrEmpty", err)
	}
}

// =============================================================================
// Peek Tests
// =============================================================================

func TestFIFO_Peek(t *testing.T) {
	q := NewFIFO[int]()
	if _, err := q.Peek(); err != ErrEmpty {
		t.Errorf("Peek() on empty error = %v, want ErrEmpty", err)
	}

	_, _, _ = q.Add(1)
	_, _, _ = q.Add(2)

	got, err := q.Peek()
	if err != nil {
		t.Fatalf("Peek() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Peek() = %d, want 1", got)
	}
}

func TestFIFO_Peek_Idempotent(t *testing.T) {
	q := NewFIFO(1, -2, 3)

	for i := 0; i < 3; i++ {
		got, err := q.Peek()
		if err != nil {
			t.Fatalf("Peek() #%d error = %v", i, err)
		}
		if got != 1 {
			t.Errorf("Peek() #%d = %d, want 1", i, got)
		}
		if size := q.Size(); size != 3 {
			t.Errorf("Size() after Peek #%d = %d, want 3", i, size)
		}
	}
}
