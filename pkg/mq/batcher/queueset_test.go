package batcher

import "testing"

func TestQueueSet_PushAndDrain(t *testing.T) {
	qs := NewQueueSet[int]()

	qs.Push(1, PriorityLow)
	qs.PushAll([]int{2, 3}, PriorityHigh)

	if got := qs.Len(PriorityHigh); got != 2 {
		t.Errorf("Len(high) = %d, want 2", got)
	}
	if qs.Empty(PriorityHigh) {
		t.Error("high queue reported empty")
	}
	if !qs.Empty(PriorityMid) {
		t.Error("mid queue reported non-empty")
	}

	var batch []int
	if moved := qs.DrainInto(&batch, PriorityHigh, 1); moved != 1 {
		t.Errorf("DrainInto moved %d, want 1", moved)
	}
	if len(batch) != 1 || batch[0] != 2 {
		t.Errorf("batch = %v, want [2]", batch)
	}

	qs.DrainInto(&batch, PriorityHigh, 0)
	qs.DrainInto(&batch, PriorityLow, 0)
	want := []int{2, 3, 1}
	for i, w := range want {
		if batch[i] != w {
			t.Errorf("batch[%d] = %d, want %d", i, batch[i], w)
		}
	}
}

func TestQueueSet_Clear(t *testing.T) {
	qs := NewQueueSet[string]()
	qs.Push("a", PriorityLow)
	qs.Push("b", PriorityMid)
	qs.PushAll([]string{"c", "d"}, PriorityHigh)

	if got := qs.Clear(); got != 4 {
		t.Errorf("Clear() = %d, want 4", got)
	}
	for p := Priority(0); p < NumPriorities; p++ {
		if !qs.Empty(p) {
			t.Errorf("queue %s not empty after Clear", p)
		}
	}
}

func TestQueueSet_InvalidPriorityPanics(t *testing.T) {
	qs := NewQueueSet[int]()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range priority")
		}
	}()
	qs.Push(1, Priority(NumPriorities))
}

func TestPriority_String(t *testing.T) {
	tests := []struct {
		prio Priority
		want string
	}{
		{PriorityLow, "low"},
		{PriorityMid, "mid"},
		{PriorityHigh, "high"},
		{Priority(7), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.prio.String(); got != tt.want {
			t.Errorf("Priority(%d).String() = %q, want %q", tt.prio, got, tt.want)
		}
	}
}
