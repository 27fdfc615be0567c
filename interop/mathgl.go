package interop

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/dhkin/matrix"
)

// ToMat4 converts a row-major transform to mathgl's column-major layout.
// A row-major buffer read column-major is the transpose, so one Transpose
// performs the conversion.
func ToMat4(m matrix.Mat4) mgl64.Mat4 {
	return mgl64.Mat4(m).Transpose()
}

// FromMat4 converts a column-major mathgl matrix to a row-major transform.
func FromMat4(m mgl64.Mat4) matrix.Mat4 {
	return matrix.Mat4(m.Transpose())
}

// PositionVec3 returns m's position column as a mathgl vector.
func PositionVec3(m matrix.Mat4) mgl64.Vec3 {
	p := m.Position()

	return mgl64.Vec3(p)
}
