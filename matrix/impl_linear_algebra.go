// SPDX-License-Identifier: MIT
// Package matrix: Matrix-level facades over the flat kernels.
//
// Purpose:
//   - Give shaped callers (Dense, or any Matrix) Mul/T/InverseOf without
//     hand-tracking rows and cols. Each facade materializes the operands into
//     row-major buffers and delegates to the kernels in kernels.go and
//     impl_inverse.go, so numeric behaviour is identical on both surfaces.

package matrix

import "fmt"

// flatten returns m as a row-major buffer. *Dense takes the fast path (one copy);
// other implementations go through At in fixed i→j order.
func flatten(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.Data(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateDims(rows, cols); err != nil {
		return nil, err
	}
	buf := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			buf[i*cols+j] = v
		}
	}

	return buf, nil
}

// Mul returns A·B as a new Dense.
// Implementation:
//   - Stage 1: validate non-nil operands and A.Cols == B.Rows.
//   - Stage 2: flatten both, run Multiply into a fresh buffer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	ab, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bb, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	m, p, n := a.Rows(), a.Cols(), b.Cols()
	out := make([]float64, m*n)
	if err = Multiply(ab, bb, m, p, n, out); err != nil {
		return nil, err
	}

	return &Dense{r: m, c: n, data: out}, nil
}

// T returns mᵀ as a new Dense.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func T(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	buf, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	if err = Transpose(buf, rows, cols, out); err != nil {
		return nil, err
	}

	return &Dense{r: cols, c: rows, data: out}, nil
}

// InverseOf returns m⁻¹ as a new Dense; m is not modified.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n^3), Space O(n^2).
func InverseOf(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m.Rows(), m.Cols()); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	buf, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	inv, err := Inverse(buf, n, opts...)
	if err != nil {
		return nil, err
	}

	return &Dense{r: n, c: n, data: inv}, nil
}
