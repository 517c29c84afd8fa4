// Package pipeline composes per-pixel raster stages into runnable programs.
//
// A pipeline is an ordered list of stages (shading, blending, masking,
// coordinate transforms) assembled with a [Builder] and compiled into a
// [RasterPipeline]. Running the compiled pipeline applies every stage, in
// order, to each pixel of a rectangle.
//
// # Building
//
// Stages are appended one at a time; stages that need parameters take a
// context value that must stay alive and unchanged while the pipeline runs:
//
//	pm := pipeline.NewPixmap(200, 100)
//
//	var b pipeline.Builder
//	b.PushWithContext(pipeline.StageUniformColor,
//	    pipeline.NewUniformColorCtx(pipeline.Color{R: 1, A: 1}.Premultiply()))
//	b.PushWithContext(pipeline.StageLoadDestination, pm.PixelsCtx())
//	b.Push(pipeline.StageSourceOver)
//	b.PushWithContext(pipeline.StageStore, pm.PixelsCtx())
//
//	p := b.Compile()
//	p.Run(pm.Rect())
//
// # Precision tiers
//
// Every stage has a high-precision kernel operating on float32 channels.
// Many also have a low-precision kernel operating on 8-bit channels widened
// to uint16, which is considerably faster. Compilation prefers the
// low-precision tier and silently falls back to high precision when any
// pushed stage lacks a low-precision kernel (or when the builder demands it
// via [Builder.SetForceHighPrecision]). The two tiers may round differently;
// results can differ by about 1/255 per channel.
//
// # Preconditions
//
// The package trades validation for speed: stage contexts must match the
// stages that consume them, rectangles must lie inside the destination
// buffer, and pixel data is always premultiplied RGBA8. Violations are
// programming errors and surface as panics or corrupted pixels, not as
// returned errors.
package pipeline
