package math

// Mat4 is a column-major 4x4 matrix, the layout GPU uniforms expect.
// Element (row r, column c) is m[c*4+r]; the translation sits in m[12:15].
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// at returns element (row, col).
func (m Mat4) at(row, col int) float32 {
	return m[col*4+row]
}

// Mul returns m * other, so other is applied first.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.at(r, k) * other.at(k, c)
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// Translation returns the translation column.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// TransformPoint applies m to a point (w=1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.TransformDirection(p).Add(m.Translation())
}

// TransformDirection applies the upper 3x3 of m to a direction (w=0).
func (m Mat4) TransformDirection(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}
