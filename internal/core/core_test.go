package core

import (
	"testing"
	"time"
)

func TestGridIndexPanicsOutOfRange(t *testing.T) {
	g := NewGrid(4, 4, int8(-1))
	if got := g.At(3, 3); got != -1 {
		t.Fatalf("fill value not applied, got %d", got)
	}
	g.Set(1, 2, 5)
	if got := g.Cells()[2*4+1]; got != 5 {
		t.Fatalf("row-major layout broken, got %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range access")
		}
	}()
	g.At(4, 0)
}

func TestDifficultiesSorted(t *testing.T) {
	Register(Difficulty{Name: "zz-test-large", Size: 40})
	Register(Difficulty{Name: "zz-test-small", Size: 2})
	Register(Difficulty{Name: "", Size: 3})
	Register(Difficulty{Name: "zz-test-bad", Size: 0})
	t.Cleanup(func() {
		delete(difficulties, "zz-test-large")
		delete(difficulties, "zz-test-small")
	})

	list := Difficulties()
	for i := 1; i < len(list); i++ {
		if list[i-1].Size > list[i].Size {
			t.Fatalf("difficulties not sorted by size: %+v", list)
		}
	}
	if _, ok := Lookup("zz-test-bad"); ok {
		t.Fatal("zero-size preset must be rejected")
	}
	if d, ok := Lookup("zz-test-small"); !ok || d.Size != 2 {
		t.Fatalf("Lookup returned %+v, %v", d, ok)
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step with the primed accumulator")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick should not step")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick should step")
	}
	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("unexpected step %v", fs.Step())
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Board",
		Params: []Parameter{{Key: "size", Label: "Size", Type: ParamTypeInt, Value: "8"}},
	}}}
	if p, ok := snap.Lookup("size"); !ok || p.Value != "8" {
		t.Fatalf("Lookup(size) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key should not be found")
	}
}
