// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for buffer/shape checks.
//  - Keep kernels minimal by delegating length/shape/aliasing checks here.
//  - Return plain sentinel errors wrapped with the validator tag so call sites
//    can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDims ensures rows and cols are both positive.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}

// ValidateShape ensures buf holds exactly rows*cols elements.
// This is the check the flat kernels rely on instead of trusting the caller.
//
// Implementation:
//   - Stage 1: ValidateDims(rows, cols).
//   - Stage 2: compare len(buf) against rows*cols.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateShape(buf []float64, rows, cols int) error {
	if err := ValidateDims(rows, cols); err != nil {
		return err
	}
	if len(buf) != rows*cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape: len %d != %dx%d", len(buf), rows, cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSquare checks rows == cols.
//
// Errors: ErrNonSquare (which also matches ErrDimensionMismatch via errors.Is).
// Complexity: O(1).
func ValidateSquare(rows, cols int) error {
	if rows != cols {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%w: %w", ErrNonSquare, ErrDimensionMismatch))
	}

	return nil
}

// ValidateNoAlias ensures out does not share backing storage with in.
// Two non-empty slices alias when their address ranges overlap.
//
// Complexity: O(1).
func ValidateNoAlias(out, in []float64) error {
	if overlaps(out, in) {
		return validatorErrorf("ValidateNoAlias", ErrAliasing)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}
