package wide

// Mask8 holds 8 boolean lanes, the result of comparing two F32x8 values.
// Kernels use masks to select between two computed values per lane and to
// zero out lanes (e.g. degenerate two-point-conical gradient positions).
type Mask8 [8]bool

// And combines two masks lane-wise.
func (m Mask8) And(other Mask8) Mask8 {
	var result Mask8
	for i := range m {
		result[i] = m[i] && other[i]
	}
	return result
}

// Or combines two masks lane-wise.
func (m Mask8) Or(other Mask8) Mask8 {
	var result Mask8
	for i := range m {
		result[i] = m[i] || other[i]
	}
	return result
}

// Not inverts every lane.
func (m Mask8) Not() Mask8 {
	var result Mask8
	for i := range m {
		result[i] = !m[i]
	}
	return result
}
