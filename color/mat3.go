package color

// Mat3 is a 3x3 matrix stored row-major: Mat3[row][col].
type Mat3 [3][3]float32

// Vec3 is a 3-component vector, used here for both CIE XYZ tristimulus
// values and linear RGB triples.
type Vec3 [3]float32

func (m Mat3) MulVec(v Vec3) Vec3 {
	var r Vec3
	for row := 0; row < 3; row++ {
		r[row] = m[row][0]*v[0] + m[row][1]*v[1] + m[row][2]*v[2]
	}
	return r
}

func (m Mat3) MulMat(o Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[row][k] * o[k][col]
			}
			r[row][col] = sum
		}
	}
	return r
}

func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[col][row] = m[row][col]
		}
	}
	return r
}

// Inverse returns the inverse of m via the cofactor/adjugate method,
// which is plenty numerically stable for the fixed 3x3 color matrices
// this package works with.
func (m Mat3) Inverse() Mat3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	D := -(b*i - c*h)
	E := a*i - c*g
	F := -(a*h - b*g)
	G := b*f - c*e
	H := -(a*f - c*d)
	I := a*e - b*d

	det := a*A + b*B + c*C

	return Mat3{
		{A / det, D / det, G / det},
		{B / det, E / det, H / det},
		{C / det, F / det, I / det},
	}
}
