package queue

import (
	"sync"
	"testing"
)

func TestFIFO_EnqueueDequeue(t *testing.T) {
	q := NewFIFO[int]()

	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue on empty queue returned ok")
	}

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	if got := q.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}

	for want := 1; want <= 3; want++ {
		v, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue returned !ok at %d", want)
		}
		if v != want {
			t.Errorf("Dequeue() = %d, want %d", v, want)
		}
	}

	if !q.Empty() {
		t.Error("queue not empty after draining")
	}
}

func TestFIFO_EnqueueBatch(t *testing.T) {
	q := NewFIFO[string]()

	q.EnqueueBatch([]string{"a", "b"})
	q.Enqueue("c")
	q.EnqueueBatch(nil) // no-op

	if got := q.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}

	want := []string{"a", "b", "c"}
	for _, w := range want {
		v, _ := q.Dequeue()
		if v != w {
			t.Errorf("Dequeue() = %q, want %q", v, w)
		}
	}
}

func TestFIFO_DrainInto(t *testing.T) {
	tests := []struct {
		name      string
		enqueue   []int
		max       int
		wantMoved int
		wantLeft  int
	}{
		{
			name:      "partial_drain",
			enqueue:   []int{1, 2, 3, 4, 5},
			max:       3,
			wantMoved: 3,
			wantLeft:  2,
		},
		{
			name:      "drain_all_explicit",
			enqueue:   []int{1, 2, 3},
			max:       10,
			wantMoved: 3,
			wantLeft:  0,
		},
		{
			name:      "drain_all_unlimited",
			enqueue:   []int{1, 2, 3},
			max:       0,
			wantMoved: 3,
			wantLeft:  0,
		},
		{
			name:      "negative_is_unlimited",
			enqueue:   []int{1, 2},
			max:       -1,
			wantMoved: 2,
			wantLeft:  0,
		},
		{
			name:      "empty_queue",
			enqueue:   nil,
			max:       5,
			wantMoved: 0,
			wantLeft:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewFIFO[int]()
			q.EnqueueBatch(tt.enqueue)

			var dst []int
			moved := q.DrainInto(&dst, tt.max)

			if moved != tt.wantMoved {
				t.Errorf("DrainInto moved %d, want %d", moved, tt.wantMoved)
			}
			if len(dst) != tt.wantMoved {
				t.Errorf("len(dst) = %d, want %d", len(dst), tt.wantMoved)
			}
			if got := q.Len(); got != tt.wantLeft {
				t.Errorf("Len() = %d after drain, want %d", got, tt.wantLeft)
			}

			// Moved items keep FIFO order
			for i, v := range dst {
				if v != tt.enqueue[i] {
					t.Errorf("dst[%d] = %d, want %d", i, v, tt.enqueue[i])
				}
			}
		})
	}
}

func TestFIFO_DrainInto_Appends(t *testing.T) {
	q := NewFIFO[int]()
	q.EnqueueBatch([]int{3, 4})

	dst := []int{1, 2}
	moved := q.DrainInto(&dst, 0)

	if moved != 2 {
		t.Fatalf("moved = %d, want 2", moved)
	}
	want := []int{1, 2, 3, 4}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], w)
		}
	}
}

func TestFIFO_Clear(t *testing.T) {
	q := NewFIFO[int]()
	q.EnqueueBatch([]int{1, 2, 3})

	if got := q.Clear(); got != 3 {
		t.Errorf("Clear() = %d, want 3", got)
	}
	if !q.Empty() {
		t.Error("queue not empty after Clear")
	}
	if got := q.Clear(); got != 0 {
		t.Errorf("Clear() on empty = %d, want 0", got)
	}
}

func TestFIFO_InterleavedDequeueEnqueue(t *testing.T) {
	q := NewFIFO[int]()

	// Exercise head-index compaction across many wrap cycles
	next := 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 10; i++ {
			q.Enqueue(round*10 + i)
		}
		for i := 0; i < 10; i++ {
			v, ok := q.Dequeue()
			if !ok || v != next {
				t.Fatalf("Dequeue() = %d,%v, want %d,true", v, ok, next)
			}
			next++
		}
	}

	if !q.Empty() {
		t.Error("queue not empty at end")
	}
}

func TestFIFO_ConcurrentProducers(t *testing.T) {
	q := NewFIFO[int]()

	const producers = 8
	const perProducer = 1000

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(p*perProducer + i)
			}
		}(p)
	}
	wg.Wait()

	if got := q.Len(); got != producers*perProducer {
		t.Fatalf("Len() = %d, want %d", got, producers*perProducer)
	}

	var dst []int
	q.DrainInto(&dst, 0)

	seen := make(map[int]bool, len(dst))
	for _, v := range dst {
		if seen[v] {
			t.Fatalf("item %d enqueued twice", v)
		}
		seen[v] = true
	}
	if len(seen) != producers*perProducer {
		t.Errorf("unique items = %d, want %d", len(seen), producers*perProducer)
	}
}
