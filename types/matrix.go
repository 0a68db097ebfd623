package types

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Matrices whose determinant is smaller than this fraction of the product
// of their column lengths are treated as singular.
const singularDetEpsilon = 1e-6

var ErrSingularMatrix = errors.New("types: matrix is singular")

// A column-major 3x3 matrix. Column i holds the image of the i-th world
// basis vector.
type Mat3 mgl32.Mat3

// Create a 3x3 identity matrix.
func Ident3() Mat3 {
	return Mat3(mgl32.Ident3())
}

// Create a matrix from its three columns.
func Mat3FromCols(c0, c1, c2 Vec3) Mat3 {
	return Mat3(mgl32.Mat3FromCols(mgl32.Vec3(c0), mgl32.Vec3(c1), mgl32.Vec3(c2)))
}

// Create a diagonal matrix.
func Diag3(d Vec3) Mat3 {
	return Mat3(mgl32.Diag3(mgl32.Vec3(d)))
}

// Create the cross product matrix of v so that Skew(v).Mul3x1(u) == v.Cross(u).
func Skew(v Vec3) Mat3 {
	return Mat3{
		0, v[2], -v[1],
		-v[2], 0, v[0],
		v[1], -v[0], 0,
	}
}

// Get a matrix column.
func (m Mat3) Col(col int) Vec3 {
	return Vec3(mgl32.Mat3(m).Col(col))
}

// Get the element at the given row and column.
func (m Mat3) At(row, col int) float32 {
	return mgl32.Mat3(m).At(row, col)
}

// Multiply two matrices.
func (m Mat3) Mul3(m2 Mat3) Mat3 {
	return Mat3(mgl32.Mat3(m).Mul3(mgl32.Mat3(m2)))
}

// Multiply matrix with a column vector.
func (m Mat3) Mul3x1(v Vec3) Vec3 {
	return Vec3(mgl32.Mat3(m).Mul3x1(mgl32.Vec3(v)))
}

// Add two matrices.
func (m Mat3) Add(m2 Mat3) Mat3 {
	return Mat3(mgl32.Mat3(m).Add(mgl32.Mat3(m2)))
}

// Multiply all elements with a scalar.
func (m Mat3) Mul(s float32) Mat3 {
	return Mat3(mgl32.Mat3(m).Mul(s))
}

// Get the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3(mgl32.Mat3(m).Transpose())
}

// Get the matrix determinant.
func (m Mat3) Det() float32 {
	return mgl32.Mat3(m).Det()
}

// Calculate the inverse matrix. An ErrSingularMatrix error is returned if
// the matrix cannot be inverted.
func (m Mat3) Inv() (Mat3, error) {
	// |det| never exceeds the product of the column lengths, so the ratio
	// measures how close the columns are to being linearly dependent.
	det := m.Det()
	scale := m.Col(0).Len() * m.Col(1).Len() * m.Col(2).Len()
	if math32.IsNaN(det) || math32.Abs(det) <= singularDetEpsilon*scale {
		return Mat3{}, fmt.Errorf("%w (det %g)", ErrSingularMatrix, det)
	}
	return Mat3(mgl32.Mat3(m).Inv()), nil
}

// Returns true if all elements are finite numbers.
func (m Mat3) IsFinite() bool {
	for _, c := range m {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Turn m into an orthonormal matrix using Gram-Schmidt orthogonalization.
// The column at index pivot keeps its direction; the remaining columns are
// processed in cyclic order after it. Only pivot values in [0, 2] are valid;
// other values are wrapped into that range.
func (m Mat3) GramSchmidt(pivot int) Mat3 {
	pivot = ((pivot % 3) + 3) % 3

	var out [3]Vec3
	for i := 0; i < 3; i++ {
		idx := (pivot + i) % 3
		col := m.Col(idx)
		for j := 0; j < i; j++ {
			col = col.Sub(out[(pivot+j)%3].Project(m.Col(idx)))
		}
		out[idx] = col
	}

	return Mat3FromCols(out[0].Normalize(), out[1].Normalize(), out[2].Normalize())
}

// Compare two matrices element-wise using the given absolute threshold.
func (m Mat3) ApproxEqual(m2 Mat3, threshold float32) bool {
	for i := range m {
		if !(math32.Abs(m[i]-m2[i]) <= threshold) {
			return false
		}
	}
	return true
}

func (m Mat3) String() string {
	return fmt.Sprintf(
		"[%3.3f %3.3f %3.3f; %3.3f %3.3f %3.3f; %3.3f %3.3f %3.3f]",
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	)
}
