// SPDX-License-Identifier: MIT

package algebra

// VectorKind is the concrete shape of a Vector: free-dimension or one of the
// fixed 2/3/4-D specializations. Fixed kinds ignore dimension arguments at
// construction and refuse Redim.
type VectorKind uint8

const (
	// KindVectorN is the resizeable, any-dimension vector.
	KindVectorN VectorKind = iota
	// KindVector2 is the fixed 2-D vector.
	KindVector2
	// KindVector3 is the fixed 3-D vector.
	KindVector3
	// KindVector4 is the fixed 4-D vector.
	KindVector4
)

// Fixed returns the fixed dimension of k, or 0 for KindVectorN.
func (k VectorKind) Fixed() int {
	switch k {
	case KindVector2:
		return 2
	case KindVector3:
		return 3
	case KindVector4:
		return 4
	default:
		return 0
	}
}

// Resizeable reports whether vectors of kind k support Redim.
func (k VectorKind) Resizeable() bool { return k.Fixed() == 0 }

// dimension resolves a requested dimension against the kind: fixed kinds
// ignore the request.
func (k VectorKind) dimension(requested int) int {
	if f := k.Fixed(); f != 0 {
		return f
	}

	return requested
}

func (k VectorKind) String() string {
	switch k {
	case KindVector2:
		return "Vector2"
	case KindVector3:
		return "Vector3"
	case KindVector4:
		return "Vector4"
	default:
		return "Vector"
	}
}

// MatrixKind is the concrete shape of a Matrix: free-dimension or the fixed
// 3×3 / 4×4 specializations.
type MatrixKind uint8

const (
	// KindMatrixN is the resizeable n×n matrix.
	KindMatrixN MatrixKind = iota
	// KindMatrix3 is the fixed 3×3 matrix.
	KindMatrix3
	// KindMatrix4 is the fixed 4×4 matrix.
	KindMatrix4
)

// Fixed returns the fixed side length of k, or 0 for KindMatrixN.
func (k MatrixKind) Fixed() int {
	switch k {
	case KindMatrix3:
		return 3
	case KindMatrix4:
		return 4
	default:
		return 0
	}
}

// Resizeable reports whether matrices of kind k support Redim.
func (k MatrixKind) Resizeable() bool { return k.Fixed() == 0 }

// VectorKind is the kind of the vectors a matrix of kind k produces
// (TimesVector, Transform, Row, Column, SolveSystem).
func (k MatrixKind) VectorKind() VectorKind {
	switch k {
	case KindMatrix3:
		return KindVector3
	case KindMatrix4:
		return KindVector4
	default:
		return KindVectorN
	}
}

// dimension resolves a requested side length against the kind.
func (k MatrixKind) dimension(requested int) int {
	if f := k.Fixed(); f != 0 {
		return f
	}

	return requested
}

func (k MatrixKind) String() string {
	switch k {
	case KindMatrix3:
		return "Matrix3"
	case KindMatrix4:
		return "Matrix4"
	default:
		return "Matrix"
	}
}
