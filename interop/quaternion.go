package interop

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/dhkin/matrix"
)

// Quaternion returns the unit quaternion of m's rotation block.
// The result is canonicalised to a non-negative real part.
//
// m is assumed to hold a proper rotation; no orthonormality check is made.
func Quaternion(m matrix.Mat4) quat.Number {
	g := mgl64.Mat4ToQuat(ToMat4(m))
	if g.W < 0 {
		g = g.Scale(-1)
	}
	q := quat.Number{Real: g.W, Imag: g.V[0], Jmag: g.V[1], Kmag: g.V[2]}

	return quat.Scale(1/quat.Abs(q), q)
}

// RotationFromQuaternion returns the rotation matrix of q after normalising
// it. The zero quaternion has no rotation and yields the identity.
func RotationFromQuaternion(q quat.Number) matrix.Mat3 {
	n := quat.Abs(q)
	if n == 0 {
		return matrix.Identity3()
	}
	q = quat.Scale(1/n, q)
	g := mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}

	return FromMat4(g.Mat4()).Rotation()
}
