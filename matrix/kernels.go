// SPDX-License-Identifier: MIT
// Package matrix: flat-buffer kernels.
//
// Purpose:
//   - Dimension-parametrized dense arithmetic over caller-owned row-major
//     buffers (offset = i*cols + j). The kernels carry no shape metadata of
//     their own: the caller passes rows/cols on every call.
//   - Every kernel validates len(buf) against the supplied shape first and
//     returns ErrDimensionMismatch instead of reading or writing out of range.
//
// Determinism:
//   - Fixed loop orders (i→j, and i→j→k for Multiply); no allocation except
//     the transient scratch in Invert.

package matrix

// Copy writes src into dst element by element (rows×cols each).
// Implementation:
//   - Stage 1: ValidateShape on both buffers.
//   - Stage 2: builtin copy (memmove semantics, so overlapping or identical
//     buffers are handled).
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Copy(src []float64, rows, cols int, dst []float64) error {
	if err := ValidateShape(src, rows, cols); err != nil {
		return matrixErrorf(opCopy, err)
	}
	if err := ValidateShape(dst, rows, cols); err != nil {
		return matrixErrorf(opCopy, err)
	}
	copy(dst, src)

	return nil
}

// Multiply computes C = A·B for A (m×p) and B (p×n) into C (m×n).
// Implementation:
//   - Stage 1: validate the three buffers against their shapes.
//   - Stage 2: reject C aliasing A or B (the inner loop needs stable reads).
//   - Stage 3: for each cell, zero C[i,j] then accumulate Σ_k A[i,k]·B[k,j].
//
// Behavior highlights:
//   - Accumulation order k = 0..p-1 per cell, identical to the textbook
//     triple loop, so results are reproducible bit for bit.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrAliasing.
//
// Complexity:
//   - Time O(m*p*n), Space O(1).
func Multiply(a, b []float64, m, p, n int, c []float64) error {
	if err := ValidateShape(a, m, p); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	if err := ValidateShape(b, p, n); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	if err := ValidateShape(c, m, n); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	if err := ValidateNoAlias(c, a); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	if err := ValidateNoAlias(c, b); err != nil {
		return matrixErrorf(opMultiply, err)
	}

	var (
		i, j, k int     // loop iterators
		sum     float64 // per-cell accumulator
	)
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < p; k++ {
				sum += a[p*i+k] * b[n*k+j]
			}
			c[n*i+j] = sum
		}
	}

	return nil
}

// Add computes C = A + B element-wise (all m×n).
// C may be the same buffer as A or B: each cell is read before it is written.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: Time O(m*n), Space O(1).
func Add(a, b []float64, m, n int, c []float64) error {
	return addSub(a, b, m, n, c, +1, opAdd)
}

// Subtract computes C = A - B element-wise (all m×n).
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: Time O(m*n), Space O(1).
func Subtract(a, b []float64, m, n int, c []float64) error {
	return addSub(a, b, m, n, c, -1, opSubtract)
}

// addSub computes c = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Subtract to share validation.
func addSub(a, b []float64, m, n int, c []float64, sign float64, opTag string) error {
	if err := ValidateShape(a, m, n); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := ValidateShape(b, m, n); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := ValidateShape(c, m, n); err != nil {
		return matrixErrorf(opTag, err)
	}

	length := m * n
	for idx := 0; idx < length; idx++ { // deterministic 0..n-1
		c[idx] = a[idx] + sign*b[idx]
	}

	return nil
}

// Transpose writes Aᵀ (n×m) into C for A (m×n).
// C must be distinct from A: A[i,j] → C[j,i] would overwrite unread cells.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch, ErrAliasing.
// Complexity: Time O(m*n), Space O(1).
func Transpose(a []float64, m, n int, c []float64) error {
	if err := ValidateShape(a, m, n); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	if err := ValidateShape(c, n, m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	if err := ValidateNoAlias(c, a); err != nil {
		return matrixErrorf(opTranspose, err)
	}

	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			c[m*j+i] = a[n*i+j]
		}
	}

	return nil
}

// Scale multiplies every element of A (m×n) by k, in place.
// NaN/Inf in k propagate like any float multiplication.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: Time O(m*n), Space O(1).
func Scale(a []float64, m, n int, k float64) error {
	if err := ValidateShape(a, m, n); err != nil {
		return matrixErrorf(opScale, err)
	}
	for idx := range a {
		a[idx] *= k
	}

	return nil
}

// Identity returns a fresh n×n identity buffer, or nil when n <= 0.
func Identity(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		out[i*n+i] = 1
	}

	return out
}
