package math

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotInvertible is returned when Gauss-Jordan elimination meets a pivot
// column with no usable (non-zero) entry.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Mat4 is a 4x4 matrix in row-major order, used with row vectors.
// Layout: [m00 m01 m02 m03]   rotation / scale
//
//	[m10 m11 m12 m13]   rotation / scale
//	[m20 m21 m22 m23]   rotation / scale
//	[m30 m31 m32 m33]   translation, weight
//
// Affine transforms keep column 3 at [0 0 0 1].
type Mat4 [4][4]float64

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float64) Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{x, y, z, 1},
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float64) Mat4 {
	return Mat4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// Mul multiplies this matrix by another (m * other).
// Transforming by the result applies m first, then other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MulVec4 multiplies the row vector v by the matrix.
func (m Mat4) MulVec4(v [4]float64) [4]float64 {
	var out [4]float64
	for col := 0; col < 4; col++ {
		out[col] = v[0]*m[0][col] + v[1]*m[1][col] + v[2]*m[2][col] + v[3]*m[3][col]
	}
	return out
}

// TransformPoint transforms a point (w=1) by this matrix.
// The result is divided by the resulting weight unless it is 0 or 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	h := m.MulVec4([4]float64{p.X, p.Y, p.Z, 1})
	if w := h[3]; w != 0 && w != 1 {
		return Vec3{h[0] / w, h[1] / w, h[2] / w}
	}
	return Vec3{h[0], h[1], h[2]}
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		d.X*m[0][0] + d.Y*m[1][0] + d.Z*m[2][0],
		d.X*m[0][1] + d.Y*m[1][1] + d.Z*m[2][1],
		d.X*m[0][2] + d.Y*m[1][2] + d.Z*m[2][2],
	}
}

// Translation returns the translation row.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3][0], m[3][1], m[3][2]}
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4) ApproxEqual(other Mat4, eps float64) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m[row][col]-other[row][col]) > eps {
				return false
			}
		}
	}
	return true
}

// Invert is shorthand for InvertMat4(m, ignoreLastColumn).
func (m Mat4) Invert(ignoreLastColumn bool) (Mat4, error) {
	return InvertMat4(m, ignoreLastColumn)
}

// InvertMat4 inverts m by Gauss-Jordan elimination with partial pivoting.
//
// With ignoreLastColumn the matrix is treated as affine: only the first three
// columns are pivoted and column 3 is assumed to be [0 0 0 1]. The translation
// row still takes part in forward elimination, which is what yields the
// inverse translation.
//
// A pivot is only replaced when it is exactly zero; the replacement is the
// largest-magnitude entry below it. If there is none, ErrNotInvertible is returned.
func InvertMat4(m Mat4, ignoreLastColumn bool) (Mat4, error) {
	cols := 4
	if ignoreLastColumn {
		cols = 3
	}

	work := m
	inv := Identity()

	for col := 0; col < cols; col++ {
		if work[col][col] == 0 {
			pivot := col
			best := 0.0
			for row := col + 1; row < cols; row++ {
				if math.Abs(work[row][col]) > math.Abs(best) {
					pivot = row
					best = work[row][col]
				}
			}
			if best == 0 {
				return Mat4{}, fmt.Errorf("pivot column %d: %w", col, ErrNotInvertible)
			}
			work[pivot], work[col] = work[col], work[pivot]
			inv[pivot], inv[col] = inv[col], inv[pivot]
		}

		// Forward elimination below the pivot.
		pivotVal := work[col][col]
		for row := col + 1; row < 4; row++ {
			f := work[row][col] / pivotVal
			if f == 0 {
				continue
			}
			for i := 0; i < cols; i++ {
				work[row][i] -= f * work[col][i]
				inv[row][i] -= f * inv[col][i]
			}
			work[row][col] = 0
		}
	}

	// Scale each pivot row so the pivot becomes 1.
	for col := 0; col < cols; col++ {
		d := work[col][col]
		for i := 0; i < cols; i++ {
			work[col][i] /= d
			inv[col][i] /= d
		}
		work[col][col] = 1
	}

	// Backward elimination above each pivot.
	for col := cols - 1; col > 0; col-- {
		for row := 0; row < col; row++ {
			k := work[row][col]
			if k == 0 {
				continue
			}
			for i := 0; i < cols; i++ {
				work[row][i] -= k * work[col][i]
				inv[row][i] -= k * inv[col][i]
			}
			work[row][col] = 0
		}
	}

	return inv, nil
}
