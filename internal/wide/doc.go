// Package wide provides SIMD-friendly wide types for batch pixel processing.
//
// This package implements the register types the pipeline executor keeps its
// in-flight pixel batches in. By using fixed-size arrays and simple loops,
// these types allow the compiler to generate SIMD instructions on supported
// architectures (SSE, AVX, NEON).
//
// # Wide Types
//
// U16x16: 16 uint16 values, the low-precision pipeline's color registers.
// F32x8: 8 float32 values, the high-precision pipeline's color registers.
// F32x16: 16 float32 values, coordinate math for the low-precision pipeline.
// Mask8: 8 boolean lanes, comparison results and lane selection.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - No unsafe, no assembly; portable across all Go targets
//   - Values are passed and returned by value; the arrays are small enough
//     that the compiler keeps them in registers on 256-bit targets
package wide
