// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap the sentinel with the operation tag
// via matrixErrorf ("Invert: matrix: singular matrix"); callers still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// dimensions -> buffer length -> aliasing -> numeric (singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates that a buffer length disagrees with the
	// caller-supplied shape, or that operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAliasing signals that an output buffer shares storage with an input
	// buffer for a kernel that needs stable reads of its inputs.
	ErrAliasing = errors.New("matrix: output aliases input")

	// ErrSingular is returned when the selected pivot is zero (or within the
	// configured pivot tolerance) during Gauss-Jordan inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrBadShape is an alias of ErrInvalidDimensions.
var ErrBadShape = ErrInvalidDimensions

// Operation name constants for unified error wrapping.
const (
	opCopy      = "Copy"
	opMultiply  = "Multiply"
	opAdd       = "Add"
	opSubtract  = "Subtract"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opInvert    = "Invert"
	opInverse   = "Inverse"
	opMul       = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
