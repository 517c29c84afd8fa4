package pipeline

// StageList is a node in a persistent, prepend-only list of stages.
//
// A list is built by pushing onto an existing list (or onto nil) and is never
// mutated afterwards, so any number of lists may share a common tail: a fixed
// preamble (say, seed + transform + gather) can be built once and extended
// into many different pipelines without copying. The compiler only reads
// nodes; it never stores them beyond the build call.
//
// The head of a list is the most recently pushed stage. Execution order is
// the reverse: the oldest stage runs first.
type StageList struct {
	prev  *StageList
	stage Stage
	ctx   any
}

// Push returns a new list with the stage prepended. The receiver may be nil
// (an empty list) and is never modified.
func (l *StageList) Push(stage Stage, ctx any) *StageList {
	return &StageList{prev: l, stage: stage, ctx: ctx}
}

// Len returns the number of stages in the list.
func (l *StageList) Len() int {
	n := 0
	for node := l; node != nil; node = node.prev {
		n++
	}
	return n
}

// Builder assembles a stage list and tracks the program size it will need.
// The zero value is an empty builder, ready to use.
type Builder struct {
	head        *StageList
	slotsNeeded int // stage and parameter slots; the sentinel slot is extra
	forceHighp  bool
}

// NewBuilder creates an empty pipeline builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Fork returns a builder sharing the current stage list. Both builders can
// keep pushing stages independently; the shared prefix is never copied or
// mutated.
func (b *Builder) Fork() *Builder {
	fork := *b
	return &fork
}

// Len returns the number of stages pushed so far.
func (b *Builder) Len() int {
	return b.head.Len()
}

// IsEmpty reports whether no stages have been pushed.
func (b *Builder) IsEmpty() bool {
	return b.head == nil
}

// List returns the underlying stage list. The list is immutable and may be
// shared freely across builders.
func (b *Builder) List() *StageList {
	return b.head
}

// ForceHighPrecision reports whether low-precision compilation is disabled.
func (b *Builder) ForceHighPrecision() bool {
	return b.forceHighp
}

// SetForceHighPrecision disables the low-precision tier for this builder.
// Useful when exact float math matters more than throughput.
func (b *Builder) SetForceHighPrecision(force bool) {
	b.forceHighp = force
}

// Push appends a stage without parameters.
func (b *Builder) Push(stage Stage) {
	b.push(stage, nil)
}

// PushWithContext appends a stage with its parameter block. ctx must remain
// valid and unchanged for as long as any compiled program references it.
func (b *Builder) PushWithContext(stage Stage, ctx any) {
	b.push(stage, ctx)
}

// PushTransform appends a coordinate transform stage.
// Identity transforms are skipped entirely.
func (b *Builder) PushTransform(ts Transform) {
	if ts.IsIdentity() {
		return
	}
	t := ts
	b.push(StageTransform, &t)
}

func (b *Builder) push(stage Stage, ctx any) {
	b.head = b.head.Push(stage, ctx)
	if ctx == nil {
		b.slotsNeeded++
	} else {
		b.slotsNeeded += 2
	}
}
