// SPDX-License-Identifier: MIT
// Package matrix: Gauss-Jordan inversion with partial pivoting.
//
// Purpose:
//   - Invert small square matrices (4×4 homogeneous transforms in practice)
//     without allocating beyond a per-call scratch copy and pivot record.
//   - Report singularity as ErrSingular rather than returning garbage.

package matrix

import (
	"fmt"
	"math"
)

// Invert replaces the n×n matrix in a with its inverse.
// MAIN DESCRIPTION:
//   - In-place Gauss-Jordan elimination with partial pivoting. The work is
//     done on a scratch copy; a is overwritten only when the inversion
//     succeeds, so on ErrSingular the caller's matrix is intact.
//
// Implementation:
//   - Stage 1: ValidateShape(a, n, n); copy a into scratch w.
//   - Stage 2: for each pivot column k:
//     scan rows k..n-1 for the largest |w[i,k]| (ties go to the later row),
//     fail if that pivot is within tolerance of zero, swap it into row k and
//     record the swap in pivrows[k], store 1/pivot on the diagonal and
//     normalize the row, then eliminate column k from every other row
//     (again storing the result-matrix entry in the freed cell).
//   - Stage 3: undo the row swaps as column swaps in reverse order.
//   - Stage 4: commit w into a.
//
// Inputs:
//   - a: row-major buffer of length n*n.
//   - n: matrix order.
//   - opts: WithPivotTolerance to relax the exact zero-pivot test.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (shape).
//   - ErrSingular (pivot |p| <= tolerance; exact 0 by default).
//
// Determinism:
//   - Fixed scan and elimination orders.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) scratch + O(n) pivot record.
//
// Notes:
//   - The default tolerance is 0, so a near-singular matrix still inverts and
//     may produce very large entries. Pass WithPivotTolerance when that matters.
func Invert(a []float64, n int, opts ...Option) error {
	if err := ValidateShape(a, n, n); err != nil {
		return matrixErrorf(opInvert, err)
	}
	o := gatherOptions(opts...)

	w := make([]float64, len(a))
	copy(w, a)
	if err := gaussJordan(w, n, o.pivotTol); err != nil {
		return matrixErrorf(opInvert, err)
	}
	copy(a, w)

	return nil
}

// Inverse returns the inverse of the n×n matrix a in a new buffer.
// a is never modified.
//
// Errors: same as Invert.
// Complexity: Time O(n^3), Space O(n^2).
func Inverse(a []float64, n int, opts ...Option) ([]float64, error) {
	if err := ValidateShape(a, n, n); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	w := make([]float64, len(a))
	copy(w, a)
	if err := gaussJordan(w, n, o.pivotTol); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return w, nil
}

// gaussJordan inverts w (n×n, already validated) in place.
// On error w is left partially reduced; callers pass a scratch copy.
func gaussJordan(w []float64, n int, tol float64) error {
	var (
		k, i, j int     // k: diagonal index; i: row; j: column
		pivrow  int     // current pivot row
		tmp     float64 // max magnitude, pivot reciprocal, swap temp
		pivrows = make([]int, n)
	)

	for k = 0; k < n; k++ {
		// Find the row with the largest entry in column k.
		tmp = 0
		pivrow = k
		for i = k; i < n; i++ {
			if math.Abs(w[i*n+k]) >= tmp {
				tmp = math.Abs(w[i*n+k])
				pivrow = i
			}
		}

		if math.Abs(w[pivrow*n+k]) <= tol {
			return fmt.Errorf("zero pivot in column %d: %w", k, ErrSingular)
		}

		if pivrow != k {
			for j = 0; j < n; j++ {
				w[k*n+j], w[pivrow*n+j] = w[pivrow*n+j], w[k*n+j]
			}
		}
		pivrows[k] = pivrow // recorded even when no swap happened

		tmp = 1 / w[k*n+k]
		w[k*n+k] = 1 // this cell now belongs to the result matrix
		for j = 0; j < n; j++ {
			w[k*n+j] *= tmp
		}

		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			tmp = w[i*n+k]
			w[i*n+k] = 0 // result-matrix cell
			for j = 0; j < n; j++ {
				w[i*n+j] -= w[k*n+j] * tmp
			}
		}
	}

	// Undo the pivot row swaps by swapping columns in reverse order.
	for k = n - 1; k >= 0; k-- {
		if pivrows[k] == k {
			continue
		}
		for i = 0; i < n; i++ {
			w[i*n+k], w[i*n+pivrows[k]] = w[i*n+pivrows[k]], w[i*n+k]
		}
	}

	return nil
}
