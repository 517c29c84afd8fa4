package pipeline

import "math"

// Transform represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Transforms are stage parameters: the Transform stage maps the in-flight
// pixel coordinates through the matrix, so shaders sample in their own local
// space. Like every other parameter block, a Transform referenced by a
// compiled program must stay unchanged while the program runs.
type Transform struct {
	A, B, C float32
	D, E, F float32
}

// IdentityTransform returns the identity transformation.
func IdentityTransform() Transform {
	return Transform{A: 1, E: 1}
}

// TranslateTransform creates a translation transform.
func TranslateTransform(x, y float32) Transform {
	return Transform{A: 1, C: x, E: 1, F: y}
}

// ScaleTransform creates a scaling transform.
func ScaleTransform(x, y float32) Transform {
	return Transform{A: x, E: y}
}

// RotateTransform creates a rotation transform (angle in radians).
func RotateTransform(angle float32) Transform {
	sin, cos := math.Sincos(float64(angle))
	return Transform{A: float32(cos), B: float32(-sin), D: float32(sin), E: float32(cos)}
}

// IsIdentity reports whether the transform maps every point to itself.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}

// IsTranslate reports whether the transform is a pure translation.
func (t Transform) IsTranslate() bool {
	return t.A == 1 && t.B == 0 && t.D == 0 && t.E == 1
}

// IsScaleTranslate reports whether the transform has no rotation or shear.
func (t Transform) IsScaleTranslate() bool {
	return t.B == 0 && t.D == 0
}

// Multiply returns the transform that applies other first, then t.
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// Apply maps a single point through the transform.
func (t Transform) Apply(x, y float32) (float32, float32) {
	return t.A*x + t.B*y + t.C, t.D*x + t.E*y + t.F
}

// Invert returns the inverse transform. The second return value is false
// when the transform is degenerate (zero determinant).
func (t Transform) Invert() (Transform, bool) {
	det := t.A*t.E - t.B*t.D
	if det == 0 {
		return Transform{}, false
	}
	invDet := 1 / det
	return Transform{
		A: t.E * invDet,
		B: -t.B * invDet,
		C: (t.B*t.F - t.E*t.C) * invDet,
		D: -t.D * invDet,
		E: t.A * invDet,
		F: (t.D*t.C - t.A*t.F) * invDet,
	}, true
}
