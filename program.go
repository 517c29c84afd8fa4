package pipeline

import "image"

// A compiled program is a flat []any holding stage functions interleaved
// with their parameter blocks, terminated by a tier sentinel:
//
//	[fn0, ctx0, fn1, fn2, ctx2, ..., sentinel]
//
// Replaying the program from its first entry executes stages in the order
// they were pushed (oldest first). Each stage function advances the cursor
// past itself and its optional parameter slot and invokes the next entry;
// the sentinel returns without dispatching, which ends the chunk.
//
// Programs are written back to front: the compiler starts at the end of the
// buffer with the sentinel and walks the stage list from its head (the most
// recently pushed stage) down to its tail, so the oldest stage ends up first.
// A failed low-precision attempt is rolled back simply by resetting the
// write cursor to the end of the buffer before the high-precision attempt
// starts over from there; no partly-written low-precision entries survive.

// RasterPipeline is a compiled, executable pipeline.
//
// A pipeline may be run any number of times, over any rectangles, as long as
// the parameter blocks its program references remain valid. Distinct
// pipelines are safe to run concurrently; a single pipeline is safe to run
// concurrently with itself only if its parameter blocks are read-only for
// the duration (the two-point-conical scratch block is not).
type RasterPipeline struct {
	program []any
	highp   bool
}

// Compile links the builder's stage list into a freshly allocated program.
//
// The low-precision tier is preferred: if every stage in the list has a
// low-precision kernel (and the builder does not force high precision), the
// resulting pipeline runs 16 pixels per chunk in u16 math. Otherwise it
// silently falls back to the complete high-precision tier, 8 pixels per
// chunk in f32 math. The choice is observable via IsHighPrecision.
func (b *Builder) Compile() *RasterPipeline {
	return b.CompileInto(make([]any, b.slotsNeeded+1))
}

// CompileInto links into a caller-provided buffer, for callers that reuse
// one worst-case allocation across many compilations.
//
// len(buf) must be at least 2*Len()+1: one slot per stage function, one per
// parameter block, one for the sentinel. That bound covers both tiers, since
// a failed low-precision attempt restarts from the end of the same buffer.
// Undersized buffers are a caller bug, not a checked error. Compiling into
// the same buffer from two goroutines races; use independent buffers.
func (b *Builder) CompileInto(buf []any) *RasterPipeline {
	start, highp := link(b.head, buf, b.forceHighp)
	return &RasterPipeline{program: buf[start:], highp: highp}
}

// IsHighPrecision reports which tier the compiler selected.
func (p *RasterPipeline) IsHighPrecision() bool {
	return p.highp
}

// Run executes the pipeline over every pixel of rect.
//
// Rows are processed top to bottom. Within a row, pixels are processed in
// chunks of the tier's batch width, with one narrower tail chunk when the
// width is not a multiple; every kernel honors the active lane count, so the
// same program serves full and tail chunks. Run performs no allocation and
// returns when the whole rectangle has been processed; an empty rectangle
// returns immediately.
//
// rect is in destination coordinates and must lie within every pixel buffer
// the program references; that precondition is established when the stage
// parameters are configured, not checked here.
func (p *RasterPipeline) Run(rect image.Rectangle) {
	if rect.Empty() {
		return
	}
	if p.highp {
		highpStart(p.program, rect)
	} else {
		lowpStart(p.program, rect)
	}
}

// link writes the program for head into buf, back to front, and returns the
// index of the first entry along with the selected tier.
func link(head *StageList, buf []any, forceHighp bool) (start int, highp bool) {
	if !forceHighp {
		cursor := len(buf) - 1
		buf[cursor] = lowpStageFn(lowpJustReturn)
		complete := true
		for node := head; node != nil; node = node.prev {
			fn := lowpStages[node.stage]
			if fn == nil {
				Logger().Debug("stage has no low-precision kernel, falling back",
					"stage", node.stage.String())
				complete = false
				break
			}
			if node.ctx != nil {
				cursor--
				buf[cursor] = node.ctx
			}
			cursor--
			buf[cursor] = fn
		}
		if complete {
			return cursor, false
		}
	}

	cursor := len(buf) - 1
	buf[cursor] = highpStageFn(highpJustReturn)
	for node := head; node != nil; node = node.prev {
		if node.ctx != nil {
			cursor--
			buf[cursor] = node.ctx
		}
		cursor--
		buf[cursor] = highpStages[node.stage]
	}
	return cursor, true
}
