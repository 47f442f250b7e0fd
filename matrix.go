package surfview

import "github.com/go-gl/mathgl/mgl64"

// Matrix is a 4x4 transform in row-vector convention: points multiply
// on the left and the translation lives in the fourth row.
type Matrix [4][4]float64

func IdentMatrix() Matrix {
	m := Matrix{}
	m[0][0], m[1][1], m[2][2], m[3][3] = 1.0, 1.0, 1.0, 1.0
	return m
}

// ToSurfMatrix converts a column-major mathgl matrix into the local
// row-vector layout.
func ToSurfMatrix(m mgl64.Mat4) Matrix {
	return Matrix{
		{m[0], m[1], m[2], m[3]},
		{m[4], m[5], m[6], m[7]},
		{m[8], m[9], m[10], m[11]},
		{m[12], m[13], m[14], m[15]},
	}
}

// TransformPoint applies the full transform, including translation.
func (m Matrix) TransformPoint(p [3]float64) [3]float64 {
	sx, sy, sz := p[0], p[1], p[2]
	return [3]float64{
		m[0][0]*sx + m[1][0]*sy + m[2][0]*sz + m[3][0],
		m[0][1]*sx + m[1][1]*sy + m[2][1]*sz + m[3][1],
		m[0][2]*sx + m[1][2]*sy + m[2][2]*sz + m[3][2],
	}
}

// TransformPoints transforms src into dst, reusing dst's backing array.
// dst must be at least as long as src.
func (m Matrix) TransformPoints(dst, src [][3]float64) {
	for i := range src {
		dst[i] = m.TransformPoint(src[i])
	}
}
