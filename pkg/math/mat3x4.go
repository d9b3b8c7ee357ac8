package math

import (
	"fmt"
	"math"
)

// Mat3x4 is a compact affine matrix: rows 0-2 hold rotation/scale and row 3
// holds the translation. The homogeneous column [0 0 0 1] is implied.
type Mat3x4 [4][3]float64

// Identity3x4 returns the affine identity.
func Identity3x4() Mat3x4 {
	return Mat3x4{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	}
}

// Mat4 promotes m to a 4x4 matrix with column 3 set to [0 0 0 1].
func (m Mat3x4) Mat4() Mat4 {
	return Mat4{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{m[3][0], m[3][1], m[3][2], 1},
	}
}

// Mul composes two affine transforms (m first, then other).
func (m Mat3x4) Mul(other Mat3x4) Mat3x4 {
	var result Mat3x4
	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col]
		}
	}
	for col := 0; col < 3; col++ {
		result[3][col] += other[3][col]
	}
	return result
}

// TransformPoint returns p * m: the weighted sum of the basis rows plus the translation.
func (m Mat3x4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		p.X*m[0][0] + p.Y*m[1][0] + p.Z*m[2][0] + m[3][0],
		p.X*m[0][1] + p.Y*m[1][1] + p.Z*m[2][1] + m[3][1],
		p.X*m[0][2] + p.Y*m[1][2] + p.Z*m[2][2] + m[3][2],
	}
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat3x4) ApproxEqual(other Mat3x4, eps float64) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			if math.Abs(m[row][col]-other[row][col]) > eps {
				return false
			}
		}
	}
	return true
}

// Invert is shorthand for InvertMat3x4(m).
func (m Mat3x4) Invert() (Mat3x4, error) {
	return InvertMat3x4(m)
}

// InvertMat3x4 inverts an affine 3x4 matrix with the same elimination as
// InvertMat4. The translation row is eliminated against the three pivot rows
// so it ends up holding the inverse translation.
func InvertMat3x4(m Mat3x4) (Mat3x4, error) {
	work := m
	inv := Identity3x4()

	for col := 0; col < 3; col++ {
		if work[col][col] == 0 {
			pivot := col
			best := 0.0
			for row := col + 1; row < 3; row++ {
				if math.Abs(work[row][col]) > math.Abs(best) {
					pivot = row
					best = work[row][col]
				}
			}
			if best == 0 {
				return Mat3x4{}, fmt.Errorf("pivot column %d: %w", col, ErrNotInvertible)
			}
			work[pivot], work[col] = work[col], work[pivot]
			inv[pivot], inv[col] = inv[col], inv[pivot]
		}

		pivotVal := work[col][col]
		for row := col + 1; row < 4; row++ {
			f := work[row][col] / pivotVal
			if f == 0 {
				continue
			}
			for i := 0; i < 3; i++ {
				work[row][i] -= f * work[col][i]
				inv[row][i] -= f * inv[col][i]
			}
			work[row][col] = 0
		}
	}

	for col := 0; col < 3; col++ {
		d := work[col][col]
		for i := 0; i < 3; i++ {
			work[col][i] /= d
			inv[col][i] /= d
		}
		work[col][col] = 1
	}

	for col := 2; col > 0; col-- {
		for row := 0; row < col; row++ {
			k := work[row][col]
			if k == 0 {
				continue
			}
			for i := 0; i < 3; i++ {
				work[row][i] -= k * work[col][i]
				inv[row][i] -= k * inv[col][i]
			}
			work[row][col] = 0
		}
	}

	return inv, nil
}
