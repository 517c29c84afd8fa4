package wide

// U16x16 represents 16 uint16 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// This is the color register type of the low-precision pipeline: every
// channel of every lane is an integer in the [0, 255] range, with the
// headroom above 255 used for intermediate products.
//
// Arithmetic wraps on overflow like the underlying uint16. Kernels rely on
// this for branches whose results are discarded by a later Select.
type U16x16 [16]uint16

// SplatU16 creates U16x16 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v U16x16) Add(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v U16x16) Sub(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v U16x16) Mul(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div255 divides each element by 255 using the approximation (x + 255) >> 8.
// The error relative to exact division is at most one, biased upward, which
// keeps 255*255 mapping to 255 and 0 mapping to 0.
func (v U16x16) Div255() U16x16 {
	var result U16x16
	for i := range v {
		result[i] = (v[i] + 255) >> 8
	}
	return result
}

// Inv computes 255 - v for each element (inverse alpha).
func (v U16x16) Inv() U16x16 {
	var result U16x16
	for i := range v {
		result[i] = 255 - v[i]
	}
	return result
}

// Min performs element-wise minimum.
func (v U16x16) Min(other U16x16) U16x16 {
	var result U16x16
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
func (v U16x16) Max(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		if v[i] > other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Le compares v <= other element-wise.
func (v U16x16) Le(other U16x16) Mask16 {
	var m Mask16
	for i := range v {
		m[i] = v[i] <= other[i]
	}
	return m
}

// Mask16 holds 16 boolean lanes, the result of comparing two U16x16 values.
type Mask16 [16]bool

// Select returns t where the mask lane is set and f elsewhere.
func (m Mask16) Select(t, f U16x16) U16x16 {
	var result U16x16
	for i := range result {
		if m[i] {
			result[i] = t[i]
		} else {
			result[i] = f[i]
		}
	}
	return result
}
