// Package rotation builds rotation matrices and homogeneous transforms from
// angles, and provides the scalar angle and distance helpers used around them.
//
// All builders use right-hand-rule rotations of a right-handed orthonormal
// frame, angles in radians. The composite builders (Rotxyz, Rotzyx and their
// 4x4 forms) write the closed-form entries directly instead of multiplying
// three elementary rotations, so results are reproducible bit for bit.
package rotation

import (
	"math"

	"github.com/katalvlaran/dhkin/matrix"
)

// Rotx rotates about the x-axis.
func Rotx(theta float64) matrix.Mat3 {
	s, c := math.Sincos(theta)

	return matrix.Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// Trotx is Rotx embedded in a 4x4 transform with zero position.
func Trotx(theta float64) matrix.Mat4 {
	return embed(Rotx(theta))
}

// Roty rotates about the y-axis.
func Roty(theta float64) matrix.Mat3 {
	s, c := math.Sincos(theta)

	return matrix.Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// Troty is Roty embedded in a 4x4 transform with zero position.
func Troty(theta float64) matrix.Mat4 {
	return embed(Roty(theta))
}

// Rotz rotates about the z-axis.
func Rotz(theta float64) matrix.Mat3 {
	s, c := math.Sincos(theta)

	return matrix.Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Trotz is Rotz embedded in a 4x4 transform with zero position.
func Trotz(theta float64) matrix.Mat4 {
	return embed(Rotz(theta))
}

// Rotxyz rotates about x, then y, then z (Rx·Ry·Rz).
func Rotxyz(thetaX, thetaY, thetaZ float64) matrix.Mat3 {
	s1, c1 := math.Sincos(thetaX)
	s2, c2 := math.Sincos(thetaY)
	s3, c3 := math.Sincos(thetaZ)

	return matrix.Mat3{
		c2 * c3, -c2 * s3, s2,
		(c1 * s3) + (c3 * s1 * s2), (c1 * c3) - (s1 * s2 * s3), -c2 * s1,
		(s1 * s3) - (c1 * c3 * s2), (c3 * s1) + (c1 * s2 * s3), c1 * c2,
	}
}

// Trotxyz is Rotxyz embedded in a 4x4 transform with zero position.
func Trotxyz(thetaX, thetaY, thetaZ float64) matrix.Mat4 {
	return embed(Rotxyz(thetaX, thetaY, thetaZ))
}

// Rotzyx rotates about z, then y, then x (Rz·Ry·Rx).
// Note the argument order follows the rotation order.
func Rotzyx(thetaZ, thetaY, thetaX float64) matrix.Mat3 {
	s1, c1 := math.Sincos(thetaZ)
	s2, c2 := math.Sincos(thetaY)
	s3, c3 := math.Sincos(thetaX)

	return matrix.Mat3{
		c1 * c2, (c1 * s2 * s3) - (c3 * s1), (s1 * s3) + (c1 * c3 * s2),
		c2 * s1, (c1 * c3) + (s1 * s2 * s3), (c3 * s1 * s2) - (c1 * s3),
		-s2, c2 * s3, c2 * c3,
	}
}

// Trotzyx is Rotzyx embedded in a 4x4 transform with zero position.
func Trotzyx(thetaZ, thetaY, thetaX float64) matrix.Mat4 {
	return embed(Rotzyx(thetaZ, thetaY, thetaX))
}

// Transl returns a pure translation (identity rotation).
func Transl(x, y, z float64) matrix.Mat4 {
	return matrix.Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// embed places r in the rotation block of a 4x4 transform.
func embed(r matrix.Mat3) matrix.Mat4 {
	return matrix.Mat4{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	}
}
