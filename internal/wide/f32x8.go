package wide

import "math"

// F32x8 represents 8 float32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// This is the color register type of the high-precision pipeline, where
// every channel of every lane is a float in the [0, 1] range (coordinates
// and gradient positions may leave that range between stages).
type F32x8 [8]float32

// SplatF32 creates F32x8 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatF32(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x8) Sub(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs element-wise division.
// Division by zero results in +Inf, -Inf, or NaN according to IEEE 754.
func (v F32x8) Div(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// MulAdd computes v*m + a element-wise (fused multiply-add shape).
func (v F32x8) MulAdd(m, a F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i]*m[i] + a[i]
	}
	return result
}

// Sqrt computes the square root of each element.
// Negative values result in NaN according to IEEE 754.
func (v F32x8) Sqrt() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(math.Sqrt(float64(v[i])))
	}
	return result
}

// Recip computes 1/v for each element.
func (v F32x8) Recip() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = 1.0 / v[i]
	}
	return result
}

// RecipSqrt computes 1/sqrt(v) for each element.
func (v F32x8) RecipSqrt() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(1.0 / math.Sqrt(float64(v[i])))
	}
	return result
}

// Floor rounds each element down to the nearest integer.
func (v F32x8) Floor() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(math.Floor(float64(v[i])))
	}
	return result
}

// Fract returns the fractional part of each element: v - floor(v).
func (v F32x8) Fract() F32x8 {
	return v.Sub(v.Floor())
}

// Abs returns the absolute value of each element.
func (v F32x8) Abs() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(math.Abs(float64(v[i])))
	}
	return result
}

// Min performs element-wise minimum.
func (v F32x8) Min(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		if v[i] < other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Max performs element-wise maximum.
func (v F32x8) Max(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		if v[i] > other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Normalize clamps each element to the [0, 1] range.
func (v F32x8) Normalize() F32x8 {
	return v.Max(F32x8{}).Min(SplatF32(1))
}

// Lerp performs linear interpolation: v + (other - v) * t.
// When t=0, returns v; when t=1, returns other.
func (v F32x8) Lerp(other F32x8, t F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + (other[i]-v[i])*t[i]
	}
	return result
}

// Eq compares elements for equality.
func (v F32x8) Eq(other F32x8) Mask8 {
	var m Mask8
	for i := range v {
		m[i] = v[i] == other[i]
	}
	return m
}

// Ne compares elements for inequality. Note that NaN != NaN, so Ne
// detects NaN lanes when a value is compared with itself.
func (v F32x8) Ne(other F32x8) Mask8 {
	var m Mask8
	for i := range v {
		m[i] = v[i] != other[i]
	}
	return m
}

// Le compares v <= other element-wise.
func (v F32x8) Le(other F32x8) Mask8 {
	var m Mask8
	for i := range v {
		m[i] = v[i] <= other[i]
	}
	return m
}

// Lt compares v < other element-wise.
func (v F32x8) Lt(other F32x8) Mask8 {
	var m Mask8
	for i := range v {
		m[i] = v[i] < other[i]
	}
	return m
}

// Ge compares v >= other element-wise.
func (v F32x8) Ge(other F32x8) Mask8 {
	var m Mask8
	for i := range v {
		m[i] = v[i] >= other[i]
	}
	return m
}

// Gt compares v > other element-wise.
func (v F32x8) Gt(other F32x8) Mask8 {
	var m Mask8
	for i := range v {
		m[i] = v[i] > other[i]
	}
	return m
}

// Select returns t where the mask lane is set and f elsewhere.
func (m Mask8) Select(t, f F32x8) F32x8 {
	var result F32x8
	for i := range result {
		if m[i] {
			result[i] = t[i]
		} else {
			result[i] = f[i]
		}
	}
	return result
}
