package pipeline

import "testing"

func TestStageListPush(t *testing.T) {
	var l *StageList
	if l.Len() != 0 {
		t.Fatalf("nil list Len() = %d, want 0", l.Len())
	}

	l = l.Push(StageSeedShader, nil)
	l = l.Push(StageSourceOver, nil)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if l.stage != StageSourceOver {
		t.Errorf("head stage = %v, want SourceOver", l.stage)
	}
	if l.prev.stage != StageSeedShader {
		t.Errorf("tail stage = %v, want SeedShader", l.prev.stage)
	}
}

// Pushing never mutates existing nodes, so two lists can share a prefix.
func TestStageListSharedPrefix(t *testing.T) {
	var base *StageList
	base = base.Push(StageSeedShader, nil)

	left := base.Push(StageSourceOver, nil)
	right := base.Push(StageMultiply, nil)

	if left.prev != base || right.prev != base {
		t.Fatal("extended lists do not share the base node")
	}
	if base.stage != StageSeedShader || base.Len() != 1 {
		t.Fatal("base list changed after being extended")
	}
	if left.stage != StageSourceOver || right.stage != StageMultiply {
		t.Fatalf("head stages = %v, %v", left.stage, right.stage)
	}
}

func TestBuilderSlotAccounting(t *testing.T) {
	pm := NewPixmap(1, 1)

	var b Builder
	if b.slotsNeeded != 0 || !b.IsEmpty() {
		t.Fatalf("zero builder: slotsNeeded = %d, IsEmpty = %v", b.slotsNeeded, b.IsEmpty())
	}

	b.Push(StageSourceOver) // 1 slot
	if b.slotsNeeded != 1 {
		t.Fatalf("after Push: slotsNeeded = %d, want 1", b.slotsNeeded)
	}

	b.PushWithContext(StageStore, pm.PixelsCtx()) // 2 slots
	if b.slotsNeeded != 3 {
		t.Fatalf("after PushWithContext: slotsNeeded = %d, want 3", b.slotsNeeded)
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestBuilderFork(t *testing.T) {
	var b Builder
	b.Push(StageSeedShader)

	fork := b.Fork()
	fork.Push(StageXYToRadius)

	if b.Len() != 1 {
		t.Errorf("original builder Len() = %d after forking, want 1", b.Len())
	}
	if fork.Len() != 2 {
		t.Errorf("fork Len() = %d, want 2", fork.Len())
	}
	if fork.List().prev != b.List() {
		t.Error("fork does not share the original stage list")
	}
}

func TestPushTransformSkipsIdentity(t *testing.T) {
	var b Builder
	b.PushTransform(IdentityTransform())
	if !b.IsEmpty() {
		t.Fatal("identity transform was pushed")
	}

	b.PushTransform(TranslateTransform(3, 4))
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
	if b.slotsNeeded != 2 {
		t.Fatalf("slotsNeeded = %d, want 2", b.slotsNeeded)
	}
}

// PushTransform must copy its argument: later writes to the caller's value
// must not reach a compiled program.
func TestPushTransformCopies(t *testing.T) {
	ts := TranslateTransform(5, 0)

	var b Builder
	b.PushTransform(ts)
	ts.C = 999

	got := b.List().ctx.(*Transform)
	if got.C != 5 {
		t.Fatalf("stored transform C = %v, want 5", got.C)
	}
}
