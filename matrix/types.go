// SPDX-License-Identifier: MIT

// Package matrix: fixed-size transform types and the shaped Matrix interface.
// Mat3 and Mat4 are value types (arrays), so assignment copies; this is what
// gives the kinematics layer its copy-in/copy-out accessors for free.
package matrix

// Mat3 is a 3x3 row-major matrix, typically a rotation.
type Mat3 [9]float64

// Mat4 is a 4x4 row-major homogeneous transform:
// rotation in the top-left 3x3 block, position in column 3, bottom row (0,0,0,1).
type Mat4 [16]float64

// Identity3 returns the 3x3 identity.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Identity4 returns the 4x4 identity transform.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns element (row, col). Indices are not checked; the array bound
// check panics on misuse like any Go array index.
func (m Mat3) At(row, col int) float64 { return m[row*3+col] }

// Slice returns a fresh row-major copy of m for the flat kernels.
func (m Mat3) Slice() []float64 {
	out := make([]float64, len(m))
	copy(out, m[:])

	return out
}

// At returns element (row, col).
func (m Mat4) At(row, col int) float64 { return m[row*4+col] }

// Slice returns a fresh row-major copy of m for the flat kernels.
func (m Mat4) Slice() []float64 {
	out := make([]float64, len(m))
	copy(out, m[:])

	return out
}

// Position returns the translation column (x, y, z).
func (m Mat4) Position() [3]float64 {
	return [3]float64{m[3], m[7], m[11]}
}

// Rotation returns the top-left 3x3 block.
func (m Mat4) Rotation() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Mul returns m·b.
// Both operands are arrays held by value, so the product never aliases them.
func (m Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	// Multiply cannot fail here: every length is 16 and out is distinct.
	_ = Multiply(m[:], b[:], 4, 4, 4, out[:])

	return out
}

// Mat4FromSlice copies a 16-element row-major buffer into a Mat4.
//
// Errors: ErrDimensionMismatch when len(buf) != 16.
func Mat4FromSlice(buf []float64) (Mat4, error) {
	var out Mat4
	if err := Copy(buf, 4, 4, out[:]); err != nil {
		return Mat4{}, err
	}

	return out, nil
}

// Matrix represents a two-dimensional mutable array of float64 values with
// checked accessors. Dense is the only implementation in this module.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
