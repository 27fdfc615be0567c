// Package matrix is the small dense-matrix engine behind dhkin.
//
// The package provides:
//
//   - Flat-buffer kernels (Copy, Multiply, Add, Subtract, Transpose, Scale,
//     Invert, Inverse) over caller-owned row-major []float64 buffers. Shapes
//     are passed on every call and checked against the buffer length.
//   - Gauss-Jordan inversion with partial pivoting. Invert commits into its
//     argument only on success; a singular input is reported as ErrSingular
//     and left untouched.
//   - Fixed-size Mat3 / Mat4 value types for rotations and homogeneous
//     transforms.
//   - Dense, a shaped wrapper with checked At/Set, plus Mul/T/InverseOf
//     facades for callers that prefer not to track dimensions.
//
// All kernels are stateless free functions; there is no shared engine
// instance and nothing here is retained between calls.
//
// Errors are package sentinels (errors.go) wrapped with the operation name;
// match them with errors.Is.
package matrix
