// Package dhkin computes forward kinematics for serial robot arms described
// by Denavit-Hartenberg tables.
//
// The module is split into small packages that build on each other:
//
//	matrix/   flat row-major kernels (multiply, add, transpose, Gauss-Jordan
//	          inversion) plus the fixed-size Mat3/Mat4 types and a shaped Dense
//	rotation/ elementary and Euler rotations, translations, angle helpers
//	dh/       Link (one D-H row) and Chain (links + tool + cached pose)
//	dhprint/  console rendering of matrices, links and chain state
//	interop/  conversions to gonum (mat, quat) and mathgl (mgl64)
//	config/   YAML robot definitions and bundled example robots
//	cmd/dhkin command-line front end
//
// Quick start:
//
//	c, _ := dh.NewChain([]dh.Link{
//		dh.NewLink(0, 0, 1, 0),
//		dh.NewLink(0, 0, 1, 0),
//	})
//	_ = c.SetJointVector([]float64{0, math.Pi / 2})
//	p := c.CurrentPosition() // (1, 1, 0)
//
// All angles are radians; lengths use the unit of the D-H table. Chains are
// safe for concurrent use, and the matrix kernels are stateless.
package dhkin
