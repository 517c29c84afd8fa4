package wide

import "math"

// F32x16 represents 16 float32 values, one per lane of the low-precision
// pipeline. The low-precision pipeline keeps its colors in U16x16, but
// coordinate generation, affine transforms and gradient positions still need
// float math at the full 16-lane width; F32x16 carries that state.
type F32x16 [16]float32

// SplatF32x16 creates F32x16 with all elements set to n.
func SplatF32x16(n float32) F32x16 {
	var result F32x16
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v F32x16) Add(other F32x16) F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x16) Sub(other F32x16) F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x16) Mul(other F32x16) F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// MulAdd computes v*m + a element-wise (fused multiply-add shape).
func (v F32x16) MulAdd(m, a F32x16) F32x16 {
	var result F32x16
	for i := range v {
		result[i] = v[i]*m[i] + a[i]
	}
	return result
}

// Floor rounds each element down to the nearest integer.
func (v F32x16) Floor() F32x16 {
	var result F32x16
	for i := range v {
		result[i] = float32(math.Floor(float64(v[i])))
	}
	return result
}

// Abs returns the absolute value of each element.
func (v F32x16) Abs() F32x16 {
	var result F32x16
	for i := range v {
		result[i] = float32(math.Abs(float64(v[i])))
	}
	return result
}

// Sqrt computes the square root of each element.
func (v F32x16) Sqrt() F32x16 {
	var result F32x16
	for i := range v {
		result[i] = float32(math.Sqrt(float64(v[i])))
	}
	return result
}

// Normalize clamps each element to the [0, 1] range.
func (v F32x16) Normalize() F32x16 {
	var result F32x16
	for i := range v {
		switch {
		case v[i] < 0:
			result[i] = 0
		case v[i] > 1:
			result[i] = 1
		default:
			result[i] = v[i]
		}
	}
	return result
}

// ToU16 truncates each element to uint16. Callers are expected to have
// scaled and biased the values into the uint16 range first.
func (v F32x16) ToU16() U16x16 {
	var result U16x16
	for i := range v {
		result[i] = uint16(v[i])
	}
	return result
}
