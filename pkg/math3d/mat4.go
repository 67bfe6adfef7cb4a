package math3d

import "math"

// Mat4 is a 4x4 matrix stored in column-major order.
//
// Memory layout (indices):
// | 0  4  8  12 |
// | 1  5  9  13 |
// | 2  6  10 14 |
// | 3  7  11 15 |
//
// For a rigid transform:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
//
// QuickInverse and Projection depend on this exact layout.
type Mat4 [16]float64

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg / 180 * math.Pi
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}
}

// RotateX creates a rotation matrix around the X axis. The angle is in
// degrees.
func RotateX(deg float64) Mat4 {
	c, s := math.Cos(Radians(deg)), math.Sin(Radians(deg))
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a rotation matrix around the Y axis. The angle is in
// degrees. Positive angles turn +Z toward -X, which matches the
// left-handed projection below.
func RotateY(deg float64) Mat4 {
	c, s := math.Cos(Radians(deg)), math.Sin(Radians(deg))
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Projection creates a perspective projection matrix.
// fovDeg is the field of view in degrees, aspect is height/width.
//
// The result maps a view-space point (x, y, z, w) to
//
//	x' = aspect·f·x
//	y' = f·y
//	z' = z·far/(far-near) - w·far·near/(far-near)
//	w' = z
//
// with f = 1/tan(fov/2).
func Projection(fovDeg, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(Radians(fovDeg)/2)
	q := far / (far - near)

	return Mat4{
		aspect * f, 0, 0, 0,
		0, f, 0, 0,
		0, 0, q, 1,
		0, 0, -near * q, 0,
	}
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for col := range 4 {
		for row := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row+k*4] * b[k+col*4]
			}
			m[row+col*4] = sum
		}
	}
	return m
}

// MulVec4 transforms a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// QuickInverse inverts a rigid (rotation + translation) matrix by
// transposing the rotation block and rotating the negated translation.
// The result is wrong for any matrix that scales or shears; see IsRigid.
func (m Mat4) QuickInverse() Mat4 {
	var inv Mat4
	inv[0], inv[1], inv[2], inv[3] = m[0], m[4], m[8], 0
	inv[4], inv[5], inv[6], inv[7] = m[1], m[5], m[9], 0
	inv[8], inv[9], inv[10], inv[11] = m[2], m[6], m[10], 0
	inv[12] = -(m[12]*inv[0] + m[13]*inv[4] + m[14]*inv[8])
	inv[13] = -(m[12]*inv[1] + m[13]*inv[5] + m[14]*inv[9])
	inv[14] = -(m[12]*inv[2] + m[13]*inv[6] + m[14]*inv[10])
	inv[15] = 1
	return inv
}

// IsRigid reports whether the upper 3x3 block is orthonormal within eps
// and the bottom row is (0, 0, 0, 1).
func (m Mat4) IsRigid(eps float64) bool {
	if m[3] != 0 || m[7] != 0 || m[11] != 0 || m[15] != 1 {
		return false
	}
	cols := [3]Vec3{
		{m[0], m[1], m[2]},
		{m[4], m[5], m[6]},
		{m[8], m[9], m[10]},
	}
	for i := range 3 {
		for j := range 3 {
			want := 0.0
			if i == j {
				want = 1
			}
			// Written so that NaN entries fail the check.
			if !(math.Abs(cols[i].Dot(cols[j])-want) <= eps) {
				return false
			}
		}
	}
	return true
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row+col*4]
}

// Translation extracts the translation component.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}
