// Package interop converts kinematic transforms to and from the types of the
// wider Go numeric ecosystem: gonum dense matrices and quaternions, and
// mathgl's column-major mgl64 matrices and vectors.
//
// matrix.Mat4 is row-major; mgl64.Mat4 is column-major. The conversions here
// are the only place where that difference is handled.
package interop
